// Package session drives the interactive console flow: catalog display,
// add/remove prompts, discount entry and the purchase summary. It is the only
// consumer of the cart engine and pricing outputs.
//
// All reads go through one bufio.Scanner over an injected reader, so the flow
// is testable with scripted input. EOF anywhere means "user canceled": the
// current sub-flow aborts and falls back to a safe prior state, never leaving
// the engine part-mutated.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/utafrali/cartsim/internal/catalog"
	"github.com/utafrali/cartsim/internal/render"
	"github.com/utafrali/cartsim/internal/service"
	apperrors "github.com/utafrali/cartsim/pkg/errors"
	"github.com/utafrali/cartsim/pkg/logger"
)

// Session orchestrates one console conversation over the cart engine.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
	svc     *service.CartService
	catalog *catalog.Catalog
	render  *render.Renderer
	logger  *slog.Logger
}

// New creates a session reading prompts from in and writing to out.
func New(in io.Reader, out io.Writer, svc *service.CartService, cat *catalog.Catalog, r *render.Renderer, log *slog.Logger) *Session {
	return &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
		svc:     svc,
		catalog: cat,
		render:  r,
		logger:  log,
	}
}

// Run executes the simulator until the user declines another purchase, input
// ends, or the context is canceled. The cart restored from the slot carries
// across purchase rounds.
func (s *Session) Run(ctx context.Context) error {
	s.render.Notice("Bienvenido al Simulador de Carrito.")

	cart := s.svc.Load(ctx)
	if !cart.IsEmpty() {
		if s.confirm("Tiene un carrito guardado. ¿Desea continuar con él?") {
			s.logger.InfoContext(ctx, "cart restored from slot",
				slog.Int("lines", len(cart.Lines)),
			)
		} else {
			if err := s.svc.Clear(ctx); err != nil {
				s.logger.WarnContext(ctx, "clear cart", slog.String("error", err.Error()))
			}
			s.render.Notice("Se vació el carrito.")
		}
	}

	// Explicit loop, one engine round per iteration. The original flow
	// recursed here; a loop keeps the depth flat no matter how many rounds.
	for {
		if ctx.Err() != nil {
			return nil
		}

		rctx := logger.WithRunID(ctx, uuid.New().String())
		s.runRound(rctx)

		if ctx.Err() != nil || !s.confirm("¿Desea simular otra compra?") {
			break
		}
	}

	s.render.Notice("Fin de la simulación. Su carrito queda guardado.")
	return nil
}

// runRound performs one purchase simulation: fill the cart, offer remove-last,
// ask for a discount code, show the summary.
func (s *Session) runRound(ctx context.Context) {
	s.render.Catalog(s.catalog.Products())

	s.addLoop(ctx)

	if !s.svc.Cart().IsEmpty() && s.confirm("¿Desea eliminar el último producto agregado?") {
		removed, err := s.svc.RemoveLast(ctx)
		if err != nil {
			s.render.Notice("%s", apperrors.UserMessage(err))
		} else {
			s.render.Notice("Se eliminó: %s", removed.Name)
		}
	}

	code := ""
	if !s.svc.Cart().IsEmpty() && s.confirm("¿Tiene un código de descuento?") {
		code, _ = s.prompt("Ingrese su código (ej: HOLA10, BANO15, FREESHIP):")
	}

	summary, err := s.svc.Summarize(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyCart) {
			s.render.Notice("Carrito vacío. No hay productos para mostrar.")
			return
		}
		logger.WithContext(ctx, s.logger).ErrorContext(ctx, "summarize", slog.String("error", err.Error()))
		return
	}

	if summary.CodeRejected {
		s.render.Notice("Código de descuento inválido. No se aplicará descuento.")
	}
	s.render.Summary(summary)
}

// addLoop prompts for products until the user cancels or declines to add
// more. Input is fully validated before the engine is called.
func (s *Session) addLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		productID, quantity, ok := s.promptItem()
		if !ok {
			return
		}

		if _, err := s.svc.AddItem(ctx, productID, quantity); err != nil {
			logger.WithContext(ctx, s.logger).WarnContext(ctx, "add item", slog.String("error", err.Error()))
			s.render.Notice("%s", apperrors.UserMessage(err))
			continue
		}

		if !s.confirm("¿Desea agregar otro producto al carrito?") {
			return
		}
	}
}

// promptItem asks for a product id and quantity, retrying iteratively on
// invalid input. The original flow recursed on bad input; the loop here is
// bounded only by the input source's own cancellation. Returns ok=false on
// cancel, with nothing mutated.
func (s *Session) promptItem() (productID, quantity int, ok bool) {
	for {
		var menu strings.Builder
		menu.WriteString("Ingrese el ID del producto que desea agregar (vacío para salir):\n")
		for _, p := range s.catalog.Products() {
			fmt.Fprintf(&menu, "%d) %s - %s\n", p.ID, p.Name, s.render.Money(p.Price))
		}

		idStr, read := s.prompt(strings.TrimSuffix(menu.String(), "\n"))
		if !read || strings.TrimSpace(idStr) == "" {
			return 0, 0, false
		}

		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			s.render.Notice("ID inválido. Intente nuevamente.")
			continue
		}
		product, found := s.catalog.FindByID(id)
		if !found {
			s.render.Notice("ID inválido. Intente nuevamente.")
			continue
		}

		qtyStr, read := s.prompt(fmt.Sprintf("Cantidad para %q:", product.Name))
		if !read {
			return 0, 0, false
		}

		qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
		if err != nil || qty <= 0 {
			s.render.Notice("La cantidad debe ser un número entero positivo.")
			continue
		}

		return id, qty, true
	}
}

// prompt writes a label and reads one line. The second return value is false
// when the input source is exhausted.
func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprintln(s.out, label)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// confirm asks a yes/no question. Anything but an affirmative answer,
// including end of input, counts as "no".
func (s *Session) confirm(label string) bool {
	answer, ok := s.prompt(label + " (s/n)")
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}
