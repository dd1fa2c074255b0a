package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/cineia/internal/client/client"
	"github.com/dmitrijs2005/cineia/internal/client/models"
	"github.com/dmitrijs2005/cineia/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cineia/internal/common"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

// MaxRecentRatings is how many recent ratings the profile shows.
const MaxRecentRatings = 6

// Overrides are the user-chosen banner and avatar images. Empty means the
// default artwork.
type Overrides struct {
	Banner string
	Avatar string
}

type ProfileService interface {
	RatedCount(ctx context.Context, userID int64) int
	Recent(ctx context.Context, userID int64) ([]models.Rating, error)
	Overrides(ctx context.Context) (Overrides, error)
	SetBanner(ctx context.Context, rawURL string) error
	SetAvatar(ctx context.Context, rawURL string) error
}

type profileService struct {
	client client.Client
	local  metadata.Repository
	log    logging.Logger
}

// NewProfileService keeps overrides in the persistent scope repository.
func NewProfileService(c client.Client, local metadata.Repository, log logging.Logger) ProfileService {
	return &profileService{client: c, local: local, log: log.With("component", "profile")}
}

// RatedCount asks the count endpoint, then falls back to the recent-ratings
// count, then to zero.
func (s *profileService) RatedCount(ctx context.Context, userID int64) int {
	n, err := s.client.CountRatings(ctx, userID)
	if err == nil {
		return n
	}
	s.log.Warn(ctx, "ratings count unavailable, trying recent ratings", "err", err)

	_, n, err = s.client.RecentRatings(ctx, userID)
	if err == nil {
		return n
	}
	s.log.Warn(ctx, "recent ratings unavailable", "err", err)
	return 0
}

func (s *profileService) Recent(ctx context.Context, userID int64) ([]models.Rating, error) {
	list, _, err := s.client.RecentRatings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recent ratings: %w", err)
	}
	if len(list) > MaxRecentRatings {
		list = list[:MaxRecentRatings]
	}
	return list, nil
}

func (s *profileService) Overrides(ctx context.Context) (Overrides, error) {
	banner, err := s.local.Get(ctx, common.KeyBanner)
	if err != nil {
		return Overrides{}, err
	}
	avatar, err := s.local.Get(ctx, common.KeyAvatar)
	if err != nil {
		return Overrides{}, err
	}
	return Overrides{Banner: string(banner), Avatar: string(avatar)}, nil
}

func (s *profileService) SetBanner(ctx context.Context, rawURL string) error {
	return s.setImage(ctx, common.KeyBanner, rawURL)
}

func (s *profileService) SetAvatar(ctx context.Context, rawURL string) error {
	return s.setImage(ctx, common.KeyAvatar, rawURL)
}

// setImage stores an http(s) URL, or removes the override for "" / "reset".
func (s *profileService) setImage(ctx context.Context, key, rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || rawURL == "reset" {
		return s.local.Delete(ctx, key)
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an http(s) URL", common.ErrInvalidInput, rawURL)
	}
	return s.local.Set(ctx, key, []byte(u.String()))
}
