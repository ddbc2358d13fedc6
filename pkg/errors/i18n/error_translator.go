// Package i18n hata kodlarının kullanıcıya dönen mesaj karşılıklarını tutar.
// Kataloglar derleme zamanında gömülür, çalışma zamanında dosya aranmaz.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed *.json
var catalogFiles embed.FS

const fallbackLocale = "en"

var messages map[string]string

// Load istenen locale kataloğunu yükler; bulunamazsa İngilizce kataloğa düşer.
func Load(locale string) error {
	data, err := catalogFiles.ReadFile(locale + ".json")
	if err != nil {
		data, err = catalogFiles.ReadFile(fallbackLocale + ".json")
		if err != nil {
			return fmt.Errorf("i18n kataloğu okunamadı (%s): %w", locale, err)
		}
	}

	messages = make(map[string]string)
	return json.Unmarshal(data, &messages)
}

// T kod için çeviriyi döner; katalogda yoksa kodu olduğu gibi döner ve
// çağıran kendi mesajıyla devam eder.
func T(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return code
}
