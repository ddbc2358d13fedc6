// Package naming kullanıcı şablonundan deterministik çıktı adları üretir.
package naming

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"image-batcher/pkg/errors"
)

var (
	tokenRe   = regexp.MustCompile(`\{(\w+)\}`)
	nonWordRe = regexp.MustCompile(`\W+`)
)

// Kabul edilen timestamp formatları (EXIF'in iki nokta ayraçlı hali önce).
var dateLayouts = []string{
	"2006:01:02 15:04:05",
	"2006-01-02 15:04:05",
}

// DateToken timestamp string'ini 8 haneli YYYYMMDD token'ına çevirir.
// Parse edilemezse boş string döner; şablon yine render edilir, token
// boş kalır.
func DateToken(dt string) string {
	if dt == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dt); err == nil {
			return t.Format("20060102")
		}
	}
	return ""
}

// Build şablonu verilen bağlamla render eder. Tanınan token'lar:
//
//	{index}  1 tabanlı sıra numarası
//	{name}   uzantısı atılmış orijinal ad, non-word karakter grupları "_"
//	{date}   YYYYMMDD (bkz. DateToken)
//
// Bilinmeyen token sessizce geçilmez, token adını içeren hata döner;
// kullanıcı yazım hataları erkenden yüzeye çıkar. Uzantıyı builder değil
// orchestrator ekler.
func Build(pattern string, index int, originalName, dt string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))

	replacements := map[string]string{
		"index": strconv.Itoa(index),
		"name":  nonWordRe.ReplaceAllString(base, "_"),
		"date":  DateToken(dt),
	}

	var badToken string
	out := tokenRe.ReplaceAllStringFunc(pattern, func(m string) string {
		key := m[1 : len(m)-1]
		val, ok := replacements[key]
		if !ok {
			if badToken == "" {
				badToken = key
			}
			return m
		}
		return val
	})

	if badToken != "" {
		return "", errors.ErrUnsupportedToken(badToken)
	}
	return out, nil
}
