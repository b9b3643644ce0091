package normalizer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/property-search/app/models"
)

// foldAccents NFD → bỏ combining marks → NFC, rồi unidecode phần còn lại
// về ASCII ("Montréal" và "Montreal" phải cho cùng một identity key).
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return unidecode.Unidecode(out)
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// foldText chuẩn hóa một text field để so sánh.
func foldText(s string) string {
	return strings.ToLower(foldAccents(strings.TrimSpace(s)))
}

// CleanPostal upper-case + bỏ toàn bộ spaces.
func CleanPostal(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
}

// Normalize tạo NormalizedRecord từ raw record. Absent/null đã thành ""
// từ tầng store; price giữ nguyên string đã trim — hai giá bằng nhau
// nhưng format khác nhau vẫn bị coi là khác (hạn chế đã biết, giữ nguyên
// theo hành vi nguồn).
func Normalize(r models.PropertyRecord) models.NormalizedRecord {
	return models.NormalizedRecord{
		Address:   foldText(r.Address),
		City:      foldText(r.City),
		Province:  foldText(r.Province),
		Postcode:  CleanPostal(r.Postcode),
		Agent:     foldText(r.Agent),
		Broker:    foldText(r.Broker),
		Price:     strings.TrimSpace(r.Price),
		Latitude:  strings.TrimSpace(r.Latitude),
		Longitude: strings.TrimSpace(r.Longitude),
	}
}

// PriceValue parse giá currency-formatted ("$500,000") thành số để sort.
// Không dùng cho duplicate comparison.
func PriceValue(price string) (float64, bool) {
	s := strings.TrimSpace(price)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
