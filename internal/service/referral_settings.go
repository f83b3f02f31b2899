package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"launchpad/config"
	"launchpad/internal/domain"
	"launchpad/internal/repository"

	"go.uber.org/zap"
)

// ReferralSettings caches the admin-editable referral switches. The
// system_settings table is authoritative; Load refreshes the cache.
type ReferralSettings struct {
	store        SettingStore
	enabled      atomic.Bool
	sharePercent atomic.Int32
	logger       *zap.Logger
}

func NewReferralSettings(cfg config.ReferralConfig, store SettingStore, logger *zap.Logger) *ReferralSettings {
	s := &ReferralSettings{store: store, logger: logger}
	s.enabled.Store(cfg.Enabled)
	s.sharePercent.Store(int32(cfg.SharePercent))
	return s
}

func (s *ReferralSettings) Enabled() bool { return s.enabled.Load() }

func (s *ReferralSettings) SharePercent() int { return int(s.sharePercent.Load()) }

// Load pulls both switches from the store. Missing keys keep the current
// value; malformed ones are logged and ignored.
func (s *ReferralSettings) Load(ctx context.Context) error {
	v, err := s.store.Get(ctx, domain.SettingReferralEnabled)
	switch {
	case err == nil:
		if b, perr := strconv.ParseBool(v); perr == nil {
			s.enabled.Store(b)
		} else {
			s.logger.Warn("ignoring malformed setting", zap.String("key", domain.SettingReferralEnabled), zap.String("value", v))
		}
	case !errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("load %s: %w", domain.SettingReferralEnabled, err)
	}

	v, err = s.store.Get(ctx, domain.SettingReferralSharePercent)
	switch {
	case err == nil:
		if n, perr := strconv.Atoi(v); perr == nil && validPercent(n) {
			s.sharePercent.Store(int32(n))
		} else {
			s.logger.Warn("ignoring malformed setting", zap.String("key", domain.SettingReferralSharePercent), zap.String("value", v))
		}
	case !errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("load %s: %w", domain.SettingReferralSharePercent, err)
	}
	return nil
}

// Update persists the given switches and then applies them. Nil leaves a
// switch unchanged.
func (s *ReferralSettings) Update(ctx context.Context, enabled *bool, sharePercent *int) error {
	if sharePercent != nil && !validPercent(*sharePercent) {
		return newError(KindInvalidAmount, nil, "share percent must be between 0 and 100, got %d", *sharePercent)
	}
	if enabled != nil {
		if err := s.store.Set(ctx, domain.SettingReferralEnabled, strconv.FormatBool(*enabled)); err != nil {
			return storeError("save referral_enabled", err)
		}
		s.enabled.Store(*enabled)
	}
	if sharePercent != nil {
		if err := s.store.Set(ctx, domain.SettingReferralSharePercent, strconv.Itoa(*sharePercent)); err != nil {
			return storeError("save referral_share_percent", err)
		}
		s.sharePercent.Store(int32(*sharePercent))
	}
	s.logger.Info("referral settings updated", zap.Bool("enabled", s.Enabled()), zap.Int("share_percent", s.SharePercent()))
	return nil
}

// Defaults returns the settings rows to seed on first start.
func (s *ReferralSettings) Defaults() map[string]string {
	return map[string]string{
		domain.SettingReferralEnabled:      strconv.FormatBool(s.Enabled()),
		domain.SettingReferralSharePercent: strconv.Itoa(s.SharePercent()),
	}
}

func validPercent(n int) bool { return n >= 0 && n <= 100 }
