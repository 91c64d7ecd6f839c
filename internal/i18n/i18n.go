// Package i18n translates the shopper-facing messages of the cart API.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Translatef translates key and formats the result with args.
func (t *Translator) Translatef(key, locale string, args ...interface{}) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyInvalidSession:     "Your cart session is invalid or has expired",
			ErrKeyNotFound:           "Not found",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyConflict:           "Conflict",
			ErrKeyTimeout:            "The request took too long, please try again",

			ErrKeyOutOfStock:      "Only %d left in stock",
			ErrKeySoldOut:         "This item is sold out",
			ErrKeyItemNotFound:    "This item is no longer in your cart",
			ErrKeyCartUnavailable: "Your cart is temporarily unavailable, please try again",

			ErrKeyEmptyCart:          "Your cart is empty",
			ErrKeyCheckoutInProgress: "Checkout is already in progress",
			ErrKeyCheckoutAbandoned:  "Checkout was cancelled",
			ErrKeyCheckoutFailed:     "We could not start checkout. Please try again",
		},
		"pt": {
			ErrKeyInvalidRequest:     "Requisição inválida",
			ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
			ErrKeyInternalError:      "Ocorreu um erro inesperado",
			ErrKeyInvalidSession:     "Sua sessão de carrinho é inválida ou expirou",
			ErrKeyNotFound:           "Não encontrado",
			ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
			ErrKeyConflict:           "Conflito",
			ErrKeyTimeout:            "A requisição demorou demais, tente novamente",

			ErrKeyOutOfStock:      "Apenas %d em estoque",
			ErrKeySoldOut:         "Este item está esgotado",
			ErrKeyItemNotFound:    "Este item não está mais no seu carrinho",
			ErrKeyCartUnavailable: "Seu carrinho está temporariamente indisponível, tente novamente",

			ErrKeyEmptyCart:          "Seu carrinho está vazio",
			ErrKeyCheckoutInProgress: "O checkout já está em andamento",
			ErrKeyCheckoutAbandoned:  "O checkout foi cancelado",
			ErrKeyCheckoutFailed:     "Não foi possível iniciar o checkout. Tente novamente",
		},
		"nl": {
			ErrKeyInvalidRequest:     "Ongeldig verzoek",
			ErrKeyInvalidRequestBody: "Ongeldige aanvraag body",
			ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
			ErrKeyInvalidSession:     "Je winkelwagensessie is ongeldig of verlopen",
			ErrKeyNotFound:           "Niet gevonden",
			ErrKeyRateLimitExceeded:  "Te veel verzoeken, probeer het later opnieuw",
			ErrKeyConflict:           "Conflict",
			ErrKeyTimeout:            "Het verzoek duurde te lang, probeer het opnieuw",

			ErrKeyOutOfStock:      "Nog maar %d op voorraad",
			ErrKeySoldOut:         "Dit artikel is uitverkocht",
			ErrKeyItemNotFound:    "Dit artikel zit niet meer in je winkelwagen",
			ErrKeyCartUnavailable: "Je winkelwagen is tijdelijk niet beschikbaar, probeer het opnieuw",

			ErrKeyEmptyCart:          "Je winkelwagen is leeg",
			ErrKeyCheckoutInProgress: "Afrekenen is al bezig",
			ErrKeyCheckoutAbandoned:  "Afrekenen is geannuleerd",
			ErrKeyCheckoutFailed:     "Afrekenen kon niet worden gestart. Probeer het opnieuw",
		},
	}
}
