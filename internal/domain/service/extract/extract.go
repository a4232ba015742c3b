// Package extract превращает свободный текст объявления в типизированные факты.
// Все функции чистые и никогда не возвращают ошибку, отсутствие факта считается обычным результатом.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/value"
)

//nolint:gochecknoglobals
var (
	pricePattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*ton`)
	urlPattern   = regexp.MustCompile(`https?://\S+`)
)

// Extract собирает все факты по одному сообщению.
func Extract(text string, rarityKeywords []string) entity.ListingFacts {
	facts := entity.ListingFacts{
		RawText: text,
		IsRare:  IsRare(text, rarityKeywords),
	}

	if m, ok := DetectMarketplace(text); ok {
		facts.Marketplace = m
	}
	if price, ok := ExtractPrice(text); ok {
		facts.Price = &price
	}
	if url, ok := ExtractURL(text); ok {
		facts.URL = url
	}

	return facts
}

// ExtractPrice ищет первое число, за которым (возможно через пробелы) идёт "ton" в любом регистре.
func ExtractPrice(text string) (float64, bool) {
	m := pricePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	price, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	return price, true
}

// ExtractURL возвращает первую http(s) ссылку.
func ExtractURL(text string) (string, bool) {
	url := urlPattern.FindString(text)
	return url, url != ""
}

// DetectMarketplace проверяет площадки в порядке value.Marketplaces и возвращает первую,
// чей идентификатор встречается в тексте как подстрока.
func DetectMarketplace(text string) (value.Marketplace, bool) {
	lower := strings.ToLower(text)

	for _, m := range value.Marketplaces {
		if strings.Contains(lower, string(m)) {
			return m, true
		}
	}

	return "", false
}

// IsRare true, если хотя бы одно ключевое слово встречается в тексте без учёта регистра.
func IsRare(text string, keywords []string) bool {
	lower := strings.ToLower(text)

	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}

	return false
}
