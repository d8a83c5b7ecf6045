package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
)

type fakeSettingsRepo struct {
	values map[string]string
}

func (f *fakeSettingsRepo) Get(_ context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, key, value string) error {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = value
	return nil
}

func (f *fakeSettingsRepo) List(_ context.Context) (map[string]string, error) {
	return f.values, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUpdate_AdvanceWindow(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
		want    string
	}{
		{name: "корректное значение", value: "180", want: "180"},
		{name: "минимум", value: "1", want: "1"},
		{name: "максимум", value: "730", want: "730"},
		{name: "ноль", value: "0", wantErr: ErrInvalidValue},
		{name: "отрицательное", value: "-5", wantErr: ErrInvalidValue},
		{name: "больше максимума", value: "1000", wantErr: ErrInvalidValue},
		{name: "не число", value: "soon", wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSettingsRepo{}
			svc := NewService(repo, nopLogger{})

			err := svc.Update(context.Background(), domain.SettingMaxAdvanceBookingDays, tt.value)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, repo.values[domain.SettingMaxAdvanceBookingDays])
		})
	}
}

func TestUpdate_DefaultBookingStatus(t *testing.T) {
	tests := []struct {
		value   string
		wantErr error
	}{
		{value: "pending"},
		{value: "confirmed"},
		{value: "checked_in", wantErr: ErrInvalidValue},
		{value: "cancelled", wantErr: ErrInvalidValue},
		{value: "vip", wantErr: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			svc := NewService(&fakeSettingsRepo{}, nopLogger{})

			err := svc.Update(context.Background(), domain.SettingDefaultBookingStatus, tt.value)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpdate_CurrencyNormalizedToUpper(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.Update(context.Background(), domain.SettingCurrency, "usd")

	require.NoError(t, err)
	assert.Equal(t, "USD", repo.values[domain.SettingCurrency])
}

func TestUpdate_CurrencyRejectsNonISO(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	for _, value := range []string{"", "EU", "EURO", "E1R"} {
		err := svc.Update(context.Background(), domain.SettingCurrency, value)
		require.ErrorIs(t, err, ErrInvalidValue, "value %q", value)
	}
}

func TestUpdate_UnknownKey(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	err := svc.Update(context.Background(), "breakfast_included", "true")

	require.ErrorIs(t, err, ErrUnknownSetting)
}

func TestList(t *testing.T) {
	repo := &fakeSettingsRepo{values: map[string]string{
		domain.SettingCurrency:              "EUR",
		domain.SettingMaxAdvanceBookingDays: "365",
	}}
	svc := NewService(repo, nopLogger{})

	values, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, values, 2)
	assert.Equal(t, "EUR", values[domain.SettingCurrency])
}
