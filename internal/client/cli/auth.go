package cli

import (
	"context"
	"fmt"
)

// getSimpleText, getPassword and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
)

// Register prompts for a username, a password and its confirmation, then
// creates the account. It does not sign in.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Nome de usuário", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Senha", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirme a senha", a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, userName, password, confirm); err != nil {
		return a.report(err)
	}

	fmt.Fprintln(a.out, "Conta criada com sucesso! Faça login para continuar.")
	return nil
}

// Login prompts for credentials and the "remember me" choice, signs in and
// loads the catalog and ratings.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Nome de usuário", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Senha", a.out)
	if err != nil {
		return err
	}
	remember, err := getYesNo(a.reader, "Lembrar de mim?", a.out)
	if err != nil {
		return err
	}

	u, err := a.session.Login(ctx, userName, password, remember)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Olá, %s!\n", u.Username)

	if err := a.favorites.Load(ctx); err != nil {
		a.log.Warn(ctx, "favorites unavailable", "err", err)
	}
	return a.report(a.refresh(ctx))
}

// Logout clears the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return a.report(err)
	}
	a.setRetry(nil)
	fmt.Fprintln(a.out, "Sessão encerrada.")
	return nil
}
