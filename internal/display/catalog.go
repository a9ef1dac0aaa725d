package display

import (
	"embed"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

var localeFiles = []string{
	"locales/active.en.toml",
	"locales/active.fr.toml",
	"locales/active.es.toml",
}

// Catalog renders the fixed user-facing messages in one locale, falling
// back to English for unknown locales or missing keys.
type Catalog struct {
	localizer *i18n.Localizer
}

// NewCatalog loads the embedded message files and binds them to locale.
func NewCatalog(locale string) *Catalog {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			slog.Warn("display: load locale", "file", file, "err", err)
		}
	}

	return &Catalog{localizer: i18n.NewLocalizer(bundle, locale, language.English.String())}
}

func (c *Catalog) FillFields() string {
	return c.localize("fill_fields", nil)
}

func (c *Catalog) Translating() string {
	return c.localize("translating", nil)
}

func (c *Catalog) ServerError(status int, statusText string) string {
	return c.localize("server_error", map[string]any{
		"Status":     status,
		"StatusText": statusText,
	})
}

func (c *Catalog) NetworkError() string {
	return c.localize("network_error", nil)
}

func (c *Catalog) localize(id string, data map[string]any) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		slog.Warn("display: localize", "id", id, "err", err)
		return id
	}
	return msg
}
