package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/gomailer/internal/dispatch/entity"
	"github.com/shandysiswandi/gomailer/internal/dispatch/outbound/email"
	"github.com/shandysiswandi/gomailer/internal/pkg/goerror"
	"github.com/shandysiswandi/gomailer/internal/pkg/instrument"
	"github.com/shandysiswandi/gomailer/internal/pkg/mail"
	"github.com/shandysiswandi/gomailer/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedUUID struct{ id string }

func (f fixedUUID) Generate() string { return f.id }

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

func (f fixedClock) Since(time.Time) time.Duration { return time.Millisecond }

type nilResolver struct{}

func (nilResolver) GetEmailService(context.Context, string) email.Resolution {
	return email.Resolution{Variant: mail.VariantMock}
}

func newUsecase(t *testing.T, out *bytes.Buffer) *Usecase {
	t.Helper()

	ins := instrument.NewNoop()
	loc, err := email.New("locator", mail.NewLocator(out), ins)
	require.NoError(t, err)
	fac, err := email.New("factory", mail.NewFactory(out), ins)
	require.NoError(t, err)
	val, err := validator.NewV10Validator()
	require.NoError(t, err)

	return NewDispatch(Dependency{
		Locator:    loc,
		Factory:    fac,
		UUID:       fixedUUID{id: "cid-test"},
		Clock:      fixedClock{now: time.Unix(0, 0)},
		Validator:  val,
		Instrument: ins,
	})
}

func TestUsecase_Send(t *testing.T) {
	tests := []struct {
		name         string
		in           SendInput
		wantOut      string
		wantVariant  mail.Variant
		wantFallback bool
	}{
		{
			name:        "locator sendgrid",
			in:          SendInput{Strategy: "locator", ServiceKey: "SendGrid", Message: "Message for the selected service."},
			wantOut:     "Sending email via SendGrid: Message for the selected service.\n",
			wantVariant: mail.VariantSendGrid,
		},
		{
			name:        "factory smtp",
			in:          SendInput{Strategy: "factory", ServiceKey: "SMTP", Message: "This is a message sent using the chosen service."},
			wantOut:     "Sending email via SMTP: This is a message sent using the chosen service.\n",
			wantVariant: mail.VariantSMTP,
		},
		{
			name:         "locator unknown key",
			in:           SendInput{Strategy: "locator", ServiceKey: "Unknown", Message: "hi"},
			wantOut:      "Mock email (not sent): hi\n",
			wantVariant:  mail.VariantMock,
			wantFallback: true,
		},
		{
			name:         "factory case mismatch",
			in:           SendInput{Strategy: "factory", ServiceKey: "smtp", Message: "hi"},
			wantOut:      "Mock email (not sent): hi\n",
			wantVariant:  mail.VariantMock,
			wantFallback: true,
		},
		{
			name:        "empty message",
			in:          SendInput{Strategy: "factory", ServiceKey: "Mock", Message: ""},
			wantOut:     "Mock email (not sent): \n",
			wantVariant: mail.VariantMock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			uc := newUsecase(t, &out)

			got, err := uc.Send(context.Background(), tt.in)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOut, out.String())
			assert.Equal(t, tt.wantVariant, got.Variant)
			assert.Equal(t, tt.wantFallback, got.Fallback)
			assert.Equal(t, "cid-test", got.CorrelationID)
		})
	}
}

func TestUsecase_Send_KeepsIncomingCorrelationID(t *testing.T) {
	var out bytes.Buffer
	uc := newUsecase(t, &out)

	ctx := instrument.SetCorrelationID(context.Background(), "incoming")
	got, err := uc.Send(ctx, SendInput{Strategy: "locator", ServiceKey: "SMTP", Message: "x"})
	require.NoError(t, err)
	assert.Equal(t, "incoming", got.CorrelationID)
}

func TestUsecase_Send_InvalidStrategy(t *testing.T) {
	var out bytes.Buffer
	uc := newUsecase(t, &out)

	_, err := uc.Send(context.Background(), SendInput{Strategy: "registry", ServiceKey: "SMTP", Message: "x"})

	var ge *goerror.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, goerror.CodeInvalidInput, ge.Code())
	assert.Empty(t, out.String())
}

func TestUsecase_Send_NilSender(t *testing.T) {
	var out bytes.Buffer
	uc := newUsecase(t, &out)
	uc.resolvers[entity.StrategyFactory] = nilResolver{}

	_, err := uc.Send(context.Background(), SendInput{Strategy: "factory", ServiceKey: "SMTP", Message: "x"})

	assert.ErrorIs(t, err, mail.ErrNoSender)
	assert.Empty(t, out.String())
}
