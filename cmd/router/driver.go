package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/athebyme/request-router/internal/core/app"
	"github.com/athebyme/request-router/internal/core/domain"
	"github.com/athebyme/request-router/internal/core/domain/balancer"
	"github.com/athebyme/request-router/internal/core/ports"
	"golang.org/x/time/rate"
)

const requestIDPrefix = "REQ"

var errQuit = errors.New("quit")

// driver - тонкая оболочка над ядром: строит запрос, вызывает роутер и печатает итог
type driver struct {
	router      ports.Router
	topology    *app.Topology
	defaultKind balancer.Kind
	requestType string
	out         io.Writer

	pending balancer.Kind // стратегия, выбранная пунктом меню и ждущая id
}

// generate отправляет n запросов с идентификаторами REQ1..REQn, соблюдая limiter
func (d *driver) generate(ctx context.Context, n int, limiter *rate.Limiter) error {
	for i := 1; i <= n; i++ {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		d.route(ctx, d.defaultKind, strconv.Itoa(i))
	}
	return nil
}

// interactive читает команды построчно:
//
//	<strategy> <id>                  маршрутизировать запрос (strategy: 1/2/3 или имя)
//	<strategy>                       выбрать стратегию как в меню; следующая строка - id
//	<id>                             маршрутизировать выбранной или дефолтной стратегией
//	add <service> <address> <cap>    добавить Destination
//	remove <service> <address>       убрать Destination
//	bind <type> <service>            направить тип запросов в сервис
//	quit | exit | 4                  выход
//
// одиночный токен, который читается как стратегия (например 1), выбирает стратегию,
// а не становится id запроса; числовой id с такой стратегией задается как "<strategy> <id>"
func (d *driver) interactive(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := d.execute(ctx, strings.Fields(scanner.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(d.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (d *driver) execute(ctx context.Context, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "quit", "exit", "4":
		return errQuit
	case "add":
		if len(fields) != 4 {
			return fmt.Errorf("usage: add <service> <address> <capacity>")
		}
		capacity, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid capacity %q: %w", fields[3], err)
		}
		if _, err := d.topology.AddDestination(fields[1], app.DestinationSpec{Address: fields[2], Capacity: capacity}); err != nil {
			return err
		}
		fmt.Fprintf(d.out, "added %s to %s\n", fields[2], fields[1])
		return nil
	case "remove":
		if len(fields) != 3 {
			return fmt.Errorf("usage: remove <service> <address>")
		}
		if _, err := d.topology.RemoveDestination(fields[1], fields[2]); err != nil {
			return err
		}
		fmt.Fprintf(d.out, "removed %s from %s\n", fields[2], fields[1])
		return nil
	case "bind":
		if len(fields) != 3 {
			return fmt.Errorf("usage: bind <type> <service>")
		}
		if err := d.topology.Bind(fields[1], fields[2]); err != nil {
			return err
		}
		fmt.Fprintf(d.out, "bound %s to %s\n", fields[1], fields[2])
		return nil
	}

	if len(fields) == 1 {
		if d.pending == "" {
			if kind, err := balancer.ParseKind(fields[0]); err == nil {
				d.pending = kind
				fmt.Fprintf(d.out, "%s: enter request id\n", kind)
				return nil
			}
		}
		kind := d.defaultKind
		if d.pending != "" {
			kind, d.pending = d.pending, ""
		}
		d.route(ctx, kind, fields[0])
		return nil
	}
	kind, err := balancer.ParseKind(fields[0])
	if err != nil {
		return err
	}
	d.route(ctx, kind, fields[1])
	return nil
}

// route маршрутизирует один запрос; как и раньше, принятый запрос сразу же завершается
func (d *driver) route(ctx context.Context, kind balancer.Kind, id string) {
	req := domain.NewRequest(requestIDPrefix+id, d.requestType, nil)
	ticket, err := d.router.Route(ctx, kind, req)
	if err != nil {
		fmt.Fprintf(d.out, "%s: error: %v\n", req.ID, err)
		return
	}
	defer ticket.Release()

	if ticket.Admitted {
		fmt.Fprintf(d.out, "%s: %s -> %s accepted\n", req.ID, ticket.Strategy, ticket.Destination.Address())
	} else {
		fmt.Fprintf(d.out, "%s: %s -> %s rejected (overloaded)\n", req.ID, ticket.Strategy, ticket.Destination.Address())
	}
}
