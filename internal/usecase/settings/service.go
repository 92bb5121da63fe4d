package settings

import (
	"context"
	"log/slog"
	"sync"

	"github.com/simaogato/assetly-backend/internal/domain"
	"github.com/simaogato/assetly-backend/internal/logging"
)

// Storage keys for the persisted preferences
const (
	ThemeKey    = "theme"
	CurrencyKey = "currency"
)

// Listener receives the settings after every change
type Listener func(domain.Settings)

// Subscription is the handle returned by Subscribe
type Subscription struct {
	service *SettingsService
	id      uint64
	once    sync.Once
}

// Unsubscribe stops further notifications. Calling it again has no effect.
func (sub *Subscription) Unsubscribe() {
	if sub == nil || sub.service == nil {
		return
	}
	sub.once.Do(func() {
		sub.service.removeListener(sub.id)
	})
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// SettingsService holds the theme and currency preferences and broadcasts changes
type SettingsService struct {
	Store  domain.KeyValueStore
	Logger *slog.Logger

	mu        sync.Mutex
	current   domain.Settings
	listeners []listenerEntry
	nextID    uint64
}

// NewSettingsService creates a new SettingsService with default preferences
func NewSettingsService(store domain.KeyValueStore, logger *slog.Logger) *SettingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsService{
		Store:  store,
		Logger: logger,
		current: domain.Settings{
			Theme:    domain.DefaultTheme,
			Currency: domain.DefaultCurrency,
		},
	}
}

// Load reads the persisted preferences and notifies listeners once
// Unreadable or unknown values keep their current value; failures are logged, not returned.
func (s *SettingsService) Load(ctx context.Context) {
	logger := logging.FromContext(ctx, s.Logger)

	theme, themeOK := s.readTheme(ctx, logger)
	currency, currencyOK := s.readCurrency(ctx, logger)

	s.mu.Lock()
	if themeOK {
		s.current.Theme = theme
	}
	if currencyOK {
		s.current.Currency = currency
	}
	s.mu.Unlock()

	s.notify()
}

// Snapshot returns the current preferences
func (s *SettingsService) Snapshot() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Theme returns the current theme
func (s *SettingsService) Theme() domain.Theme {
	return s.Snapshot().Theme
}

// Currency returns the current currency code
func (s *SettingsService) Currency() domain.Currency {
	return s.Snapshot().Currency
}

// SetTheme changes the theme, notifies listeners, then persists it
// A persistence failure is returned as *domain.StorageError; the new theme stays active.
func (s *SettingsService) SetTheme(ctx context.Context, theme domain.Theme) error {
	parsed, err := domain.ParseTheme(string(theme))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current.Theme = parsed
	s.mu.Unlock()

	s.notify()
	return s.persist(ctx, ThemeKey, string(parsed))
}

// SetCurrency changes the currency, notifies listeners, then persists it
// A persistence failure is returned as *domain.StorageError; the new currency stays active.
func (s *SettingsService) SetCurrency(ctx context.Context, currency domain.Currency) error {
	parsed, err := domain.ParseCurrency(string(currency))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current.Currency = parsed
	s.mu.Unlock()

	s.notify()
	return s.persist(ctx, CurrencyKey, string(parsed))
}

// Subscribe registers fn for change notifications
// Listeners run synchronously on the caller's goroutine, in registration order.
func (s *SettingsService) Subscribe(fn Listener) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.listeners = append(s.listeners, listenerEntry{id: s.nextID, fn: fn})
	return &Subscription{service: s, id: s.nextID}
}

// CurrencySymbol returns the display symbol for code, or for the current currency when code is empty
func (s *SettingsService) CurrencySymbol(code domain.Currency) string {
	info, ok := domain.LookupCurrency(s.resolve(code))
	if !ok {
		return "$"
	}
	return info.Symbol
}

// CurrencyName returns the full name for code, or for the current currency when code is empty
func (s *SettingsService) CurrencyName(code domain.Currency) string {
	info, ok := domain.LookupCurrency(s.resolve(code))
	if !ok {
		return string(code)
	}
	return info.Name
}

// AvailableCurrencies lists every supported currency with MYR first
func (s *SettingsService) AvailableCurrencies() []domain.CurrencyInfo {
	out := make([]domain.CurrencyInfo, 0, len(domain.Currencies))
	for _, c := range domain.Currencies {
		if c.Code == domain.CurrencyMYR {
			out = append(out, c)
		}
	}
	for _, c := range domain.Currencies {
		if c.Code != domain.CurrencyMYR {
			out = append(out, c)
		}
	}
	return out
}

func (s *SettingsService) resolve(code domain.Currency) domain.Currency {
	if code == "" {
		return s.Currency()
	}
	return code
}

func (s *SettingsService) readTheme(ctx context.Context, logger *slog.Logger) (domain.Theme, bool) {
	raw, found, err := s.Store.GetItem(ctx, ThemeKey)
	if err != nil {
		logger.Error("Error loading theme", slog.String("error", err.Error()))
		return "", false
	}
	if !found {
		return "", false
	}
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		logger.Warn("Ignoring stored theme", slog.String("value", raw))
		return "", false
	}
	return theme, true
}

func (s *SettingsService) readCurrency(ctx context.Context, logger *slog.Logger) (domain.Currency, bool) {
	raw, found, err := s.Store.GetItem(ctx, CurrencyKey)
	if err != nil {
		logger.Error("Error loading currency", slog.String("error", err.Error()))
		return "", false
	}
	if !found {
		return "", false
	}
	currency, err := domain.ParseCurrency(raw)
	if err != nil {
		logger.Warn("Ignoring stored currency", slog.String("value", raw))
		return "", false
	}
	return currency, true
}

func (s *SettingsService) persist(ctx context.Context, key, value string) error {
	if err := s.Store.SetItem(ctx, key, value); err != nil {
		logging.FromContext(ctx, s.Logger).Error("Error saving setting",
			slog.String("key", key), slog.String("error", err.Error()))
		return &domain.StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// notify calls every listener with the current snapshot, outside the lock
func (s *SettingsService) notify() {
	s.mu.Lock()
	snapshot := s.current
	listeners := make([]Listener, len(s.listeners))
	for i, l := range s.listeners {
		listeners[i] = l.fn
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (s *SettingsService) removeListener(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}
