package mail

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFactory_GetEmailService(t *testing.T) {
	tests := []struct {
		key  string
		want Variant
	}{
		{key: "SMTP", want: VariantSMTP},
		{key: "SendGrid", want: VariantSendGrid},
		{key: "Mock", want: VariantMock},
		{key: "Unknown", want: VariantMock},
		{key: "Sendgrid", want: VariantMock},
		{key: " ", want: VariantMock},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var buf bytes.Buffer
			f := NewFactory(&buf)

			f.GetEmailService(tt.key).Send("msg")

			assert.Equal(t, tt.want.Format("msg")+"\n", buf.String())
		})
	}
}

func TestFactory_FreshInstances(t *testing.T) {
	f := NewFactory(&bytes.Buffer{})

	for _, key := range []string{KeySMTP, KeySendGrid, KeyMock, "Unknown"} {
		first := f.Service(key)
		second := f.Service(key)
		assert.NotSame(t, first, second, key)
		assert.Equal(t, first.Variant(), second.Variant(), key)
	}
}

func TestFactory_Example(t *testing.T) {
	var buf bytes.Buffer
	f := NewFactory(&buf)

	m, err := NewMailer(f.GetEmailService("Unknown"))
	require.NoError(t, err)
	m.SendMessage("hi")

	assert.Equal(t, "Mock email (not sent): hi\n", buf.String())
}

func TestFactory_AgreesWithLocator(t *testing.T) {
	f := NewFactory(&bytes.Buffer{})
	l := NewLocator(&bytes.Buffer{})

	rapid.Check(t, func(t *rapid.T) {
		key := rapid.OneOf(
			rapid.SampledFrom([]string{KeySMTP, KeySendGrid, KeyMock, "smtp", "sendgrid", "MOCK", ""}),
			rapid.String(),
		).Draw(t, "key")

		if fv, lv := f.Service(key).Variant(), l.Service(key).Variant(); fv != lv {
			t.Fatalf("key %q: factory resolved %s, locator resolved %s", key, fv, lv)
		}
		if want := ParseVariant(key); f.Service(key).Variant() != want {
			t.Fatalf("key %q: factory resolved %s, want %s", key, f.Service(key).Variant(), want)
		}
	})
}
