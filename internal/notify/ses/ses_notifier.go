package ses

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"tablero/internal/config"
	"tablero/internal/domain"
	"tablero/internal/port"
)

type sesNotifier struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	notifyTo    string
}

// NewSESNotifier creates a SES-backed Notifier.
func NewSESNotifier(cfg config.EmailConfig) (port.Notifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesNotifier{
		client:      sesv2.NewFromConfig(awsCfg),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		notifyTo:    cfg.NotifyTo,
	}, nil
}

func (s *sesNotifier) SendDispatchNotice(ctx context.Context, r *domain.Remito) error {
	if s.notifyTo == "" {
		return nil
	}

	subject := fmt.Sprintf("Remito %s despachado", r.Number)
	textBody := buildDispatchText(r)
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{s.notifyTo},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildDispatchText(r *domain.Remito) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Remito %s para %s fue despachado.\n\n", r.Number, r.Client)
	if r.DispatchWindow != "" {
		fmt.Fprintf(&b, "Ventana: %s\n", r.DispatchWindow)
	}
	if r.IsExternalCarrier {
		b.WriteString("Flete externo.\n")
	}
	b.WriteString("\nItems:\n")
	for _, item := range r.LineItems {
		fmt.Fprintf(&b, "  %g x %s\n", item.Quantity, item.Code)
	}
	return b.String()
}
