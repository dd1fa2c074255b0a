package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cineia/internal/client/render"
)

// Recommend shows AI recommendations, or the catalog head when the AI
// answer is missing or late.
func (a *App) Recommend(ctx context.Context) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	_ = render.LoadingText(a.out, "Carregando recomendações...")

	list, err := a.recs.Load(ctx, u.ID)
	if err != nil {
		a.setRetry(a.Recommend)
		return a.report(err)
	}
	return render.RecommendationsText(a.out, list)
}

// Profile prints the user header, rating count and recent ratings.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	count := a.profile.RatedCount(ctx, u.ID)
	recent, err := a.profile.Recent(ctx, u.ID)
	if err != nil {
		a.log.Warn(ctx, "recent ratings unavailable", "err", err)
	}
	o, err := a.profile.Overrides(ctx)
	if err != nil {
		a.log.Warn(ctx, "profile overrides unavailable", "err", err)
	}
	return render.ProfileText(a.out, u, count, recent, o.Banner, o.Avatar)
}

// Banner sets or resets the profile banner image URL.
func (a *App) Banner(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	if err := a.profile.SetBanner(ctx, strings.Join(args, " ")); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Banner atualizado.")
	return nil
}

// Avatar sets or resets the profile avatar image URL.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	if err := a.profile.SetAvatar(ctx, strings.Join(args, " ")); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Avatar atualizado.")
	return nil
}
