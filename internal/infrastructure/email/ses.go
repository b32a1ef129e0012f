package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog"

	"github.com/zerosmoke/health-portal/internal/core/domain"
)

type sesClient interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESMailer sends reply emails through AWS SES.
type SESMailer struct {
	client sesClient
	from   Sender
	log    zerolog.Logger
}

// NewSESMailer loads the default AWS credential chain for region.
func NewSESMailer(ctx context.Context, region string, from Sender, log zerolog.Logger) (*SESMailer, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), from: from, log: log}, nil
}

func (m *SESMailer) Send(ctx context.Context, e domain.ReplyEmail) error {
	r := Render(m.from, e)

	out, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(r.From),
		Destination: &types.Destination{ToAddresses: []string{r.To}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(r.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(r.HTML), Charset: aws.String("UTF-8")},
				Text: &types.Content{Data: aws.String(r.Text), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}

	m.log.Debug().
		Str("message_id", e.MessageID).
		Str("ses_message_id", aws.ToString(out.MessageId)).
		Msg("reply email accepted by ses")
	return nil
}
