package domain

// Request описывает входящий запрос, который нужно направить в один из Destination
// значение неизменяемое: после создания поля не меняются
type Request struct {
	ID   string
	Type string

	params map[string]string
}

// NewRequest создает запрос с идентификатором id и типом requestType
// params копируются, чтобы вызывающий не мог изменить запрос после создания
func NewRequest(id, requestType string, params map[string]string) Request {
	req := Request{ID: id, Type: requestType}
	if len(params) > 0 {
		req.params = make(map[string]string, len(params))
		for k, v := range params {
			req.params[k] = v
		}
	}
	return req
}

// Param возвращает значение параметра запроса
// роутинг параметры не использует, но они часть контракта запроса
func (r Request) Param(key string) (string, bool) {
	v, ok := r.params[key]
	return v, ok
}

// Params возвращает копию всех параметров запроса
func (r Request) Params() map[string]string {
	out := make(map[string]string, len(r.params))
	for k, v := range r.params {
		out[k] = v
	}
	return out
}
