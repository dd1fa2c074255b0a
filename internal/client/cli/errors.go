package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cineia/internal/client/render"
	"github.com/dmitrijs2005/cineia/internal/common"
)

// userMessage turns an error into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidRating):
		return "Por favor, selecione uma avaliação de 1 a 10."
	case errors.Is(err, common.ErrSessionExpired):
		return "Sessão expirada. Por favor, faça login novamente."
	case errors.Is(err, common.ErrUnauthenticated):
		return "Por favor, faça login primeiro."
	case errors.Is(err, common.ErrForbidden):
		return "Acesso restrito a administradores."
	case errors.Is(err, common.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, common.ErrFetch), errors.Is(err, common.ErrNetwork):
		return "Servidor indisponível. Tente novamente."
	default:
		return fmt.Sprintf("Erro: %v", err)
	}
}

// report prints err and returns it. Fetch failures get the retry panel.
func (a *App) report(err error) error {
	if err == nil {
		return nil
	}
	a.log.Debug(context.Background(), "command failed", "err", err)
	if errors.Is(err, common.ErrFetch) {
		_ = render.ErrorText(a.out, userMessage(err))
		return err
	}
	fmt.Fprintln(a.out, userMessage(err))
	return err
}
