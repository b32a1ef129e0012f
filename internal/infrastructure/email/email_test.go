package email

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

var testSender = Sender{Name: "ZeroSmoke", Address: "no-reply@zerosmoke.test"}

func reply() domain.ReplyEmail {
	return domain.ReplyEmail{
		MessageID: "m1",
		To:        "lee@example.com",
		Subject:   "Re: Help",
		Text:      "Hi <Lee>,\nThanks & good luck.",
	}
}

func TestSenderHeader(t *testing.T) {
	assert.Equal(t, `"ZeroSmoke" <no-reply@zerosmoke.test>`, testSender.Header())
	assert.Equal(t, "a@b.c", Sender{Address: "a@b.c"}.Header())
}

func TestRender(t *testing.T) {
	r := Render(testSender, reply())

	assert.Equal(t, `"ZeroSmoke" <no-reply@zerosmoke.test>`, r.From)
	assert.Equal(t, "lee@example.com", r.To)
	assert.Equal(t, "Re: Help", r.Subject)
	assert.Equal(t, "Hi <Lee>,\nThanks & good luck.", r.Text)
	assert.Contains(t, r.HTML, "Hi &lt;Lee&gt;,<br>Thanks &amp; good luck.")
	assert.NotContains(t, r.HTML, "<Lee>")
}

func TestRender_NormalisesCRLF(t *testing.T) {
	e := reply()
	e.Text = "a\r\nb"
	r := Render(testSender, e)
	assert.Equal(t, "a\nb", r.Text)
	assert.Contains(t, r.HTML, "a<br>b")
}

type fakeSES struct {
	in  *ses.SendEmailInput
	err error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("ses-1")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	fake := &fakeSES{}
	m := &SESMailer{client: fake, from: testSender, log: zerolog.Nop()}

	require.NoError(t, m.Send(context.Background(), reply()))
	require.NotNil(t, fake.in)
	assert.Equal(t, `"ZeroSmoke" <no-reply@zerosmoke.test>`, aws.ToString(fake.in.Source))
	assert.Equal(t, []string{"lee@example.com"}, fake.in.Destination.ToAddresses)
	assert.Equal(t, "Re: Help", aws.ToString(fake.in.Message.Subject.Data))
	assert.Contains(t, aws.ToString(fake.in.Message.Body.Html.Data), "<br>")
}

func TestSESMailer_SendError(t *testing.T) {
	fake := &fakeSES{err: errors.New("throttled")}
	m := &SESMailer{client: fake, from: testSender, log: zerolog.Nop()}

	err := m.Send(context.Background(), reply())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestLogMailer_Send(t *testing.T) {
	m := NewLogMailer(testSender, zerolog.Nop())
	assert.NoError(t, m.Send(context.Background(), reply()))
}
