package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/signintech/gopdf"

	"telehealth-assistant/internal/assessment"
)

type TelegramClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, fileData []byte, fileName string) error
}

// DejaVuSans covers Latin, Cyrillic and most accented characters.
var defaultFontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

const (
	fontName  = "DejaVu"
	textWidth = 500
)

type Service struct {
	tgClient     TelegramClient
	doctorChatID int64
	fontPaths    []string
	logger       zerolog.Logger
}

// NewService builds the clinician report sender. fontPath, when set, is
// tried before the usual system locations.
func NewService(tg TelegramClient, doctorChatID int64, fontPath string, logger zerolog.Logger) *Service {
	paths := defaultFontPaths
	if fontPath != "" {
		paths = append([]string{fontPath}, defaultFontPaths...)
	}
	return &Service{
		tgClient:     tg,
		doctorChatID: doctorChatID,
		fontPaths:    paths,
		logger:       logger,
	}
}

// SendClinicianReport sends a short alert followed by the PDF. When the PDF
// cannot be rendered the text summary is still delivered.
func (s *Service) SendClinicianReport(ctx context.Context, rec assessment.Record) error {
	if s.doctorChatID == 0 {
		return errors.New("doctor chat id is not configured")
	}
	if err := s.tgClient.SendMessage(ctx, s.doctorChatID, Summary(rec)); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}

	pdf, err := s.Render(rec)
	if err != nil {
		s.logger.Warn().Err(err).Str("assessment_id", rec.ID.String()).Msg("pdf report skipped")
		return nil
	}

	fileName := fmt.Sprintf("assessment_%s.pdf", rec.ID.String())
	if err := s.tgClient.SendDocument(ctx, s.doctorChatID, pdf, fileName); err != nil {
		return fmt.Errorf("send pdf: %w", err)
	}
	return nil
}

// Summary is the plain-text alert that precedes the PDF.
func Summary(rec assessment.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s assessment %s\n", strings.ToUpper(string(rec.Urgency())), rec.ID)
	if a := rec.Assessment; a != nil {
		b.WriteString(a.UrgencyReason)
		b.WriteString("\n")
		for _, f := range a.RedFlags {
			fmt.Fprintf(&b, "! %s\n", f.Title)
		}
		if len(a.PossibleConditions) > 0 {
			top := a.PossibleConditions[0]
			fmt.Fprintf(&b, "Top match: %s (%d%%)\n", top.Name, top.Confidence)
		}
	}
	fmt.Fprintf(&b, "Source: %s", rec.Source)
	return b.String()
}

// Render draws the report. It fails only when no usable font is found or
// the document cannot be written.
func (s *Service) Render(rec assessment.Record) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range s.fontPaths {
		if err := pdf.AddTTFFont(fontName, path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load font for PDF, install ttf-dejavu or set REPORT_FONT_PATH: %w", fontErr)
	}

	for _, ln := range Lines(rec) {
		if ln.Text == "" {
			pdf.Br(ln.Gap)
			continue
		}
		if err := pdf.SetFont(fontName, "", ln.Size); err != nil {
			return nil, err
		}
		wrapped, err := pdf.SplitText(ln.Text, textWidth)
		if err != nil {
			wrapped = []string{ln.Text}
		}
		for _, w := range wrapped {
			if pdf.GetY() > 780 {
				pdf.AddPage()
			}
			_ = pdf.Cell(nil, w)
			pdf.Br(ln.Size + 3)
		}
		if ln.Gap > 0 {
			pdf.Br(ln.Gap)
		}
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
