// Package locale renders human-readable response messages. Handlers work
// with stable message ids; the text is picked per request from the lang
// cookie or the Accept-Language header.
package locale

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"bookingdesk/internal/logger"
)

//go:embed translation
var translationFS embed.FS

const localizerKey = "localizer"

var (
	mu          sync.RWMutex
	bundle      *i18n.Bundle
	defaultLang = "en"
)

// Init loads the embedded translations. lang is the fallback language.
func Init(lang string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	err := fs.WalkDir(translationFS, "translation", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := translationFS.ReadFile(path)
		if err != nil {
			return err
		}
		_, err = b.ParseMessageFileBytes(data, path)
		return err
	})
	if err != nil {
		return err
	}

	mu.Lock()
	bundle = b
	if lang != "" {
		defaultLang = lang
	}
	mu.Unlock()
	return nil
}

func currentBundle() *i18n.Bundle {
	mu.RLock()
	b := bundle
	mu.RUnlock()
	if b != nil {
		return b
	}

	if err := Init(""); err != nil {
		logger.Warningf("i18n lazy load failed: %v", err)
		return nil
	}
	mu.RLock()
	defer mu.RUnlock()
	return bundle
}

// Middleware attaches a localizer for the caller's preferred languages.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		b := currentBundle()
		if b == nil {
			c.Next()
			return
		}

		langs := make([]string, 0, 3)
		if cookie, err := c.Cookie("lang"); err == nil && cookie != "" {
			langs = append(langs, cookie)
		}
		if accept := c.GetHeader("Accept-Language"); accept != "" {
			langs = append(langs, accept)
		}
		mu.RLock()
		langs = append(langs, defaultLang)
		mu.RUnlock()

		c.Set(localizerKey, i18n.NewLocalizer(b, langs...))
		c.Next()
	}
}

// T returns the message for id in the request language. Unknown ids come
// back unchanged.
func T(c *gin.Context, id string, data ...map[string]any) string {
	var localizer *i18n.Localizer
	if v, ok := c.Get(localizerKey); ok {
		localizer, _ = v.(*i18n.Localizer)
	}
	if localizer == nil {
		b := currentBundle()
		if b == nil {
			return id
		}
		mu.RLock()
		localizer = i18n.NewLocalizer(b, defaultLang)
		mu.RUnlock()
	}

	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	msg, err := localizer.Localize(cfg)
	if err != nil {
		logger.Warningf("failed to localize %s: %v", id, err)
		return id
	}
	return msg
}
