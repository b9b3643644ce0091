package query

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrBadFilter filter value không hợp lệ (client error).
var ErrBadFilter = errors.New("invalid filter value")

// FieldArgs các filter tường minh theo field, độc lập với free text.
// Province và State là hai tên lịch sử của cùng một filter; Province
// được ưu tiên khi cả hai cùng có mặt.
type FieldArgs struct {
	Address   string
	City      string
	Agent     string
	Broker    string
	Province  string
	State     string
	Postal    string
	Latitude  string
	Longitude string
}

var (
	quotedPhraseRe = regexp.MustCompile(`"([^"]*)"`)
	tokenSplitRe   = regexp.MustCompile(`[\s,()]+`)
	allDigitsRe    = regexp.MustCompile(`^[0-9]+$`)
)

// BuildPredicate dựng predicate từ free-text query và explicit field args.
// Quoted phrases được tách trước (non-greedy, balanced); một dấu " lẻ
// không phải lỗi — nó nằm lại trong free text như một ký tự thường.
func BuildPredicate(freeText string, args FieldArgs) (*Predicate, error) {
	p := &Predicate{}

	phrases, remaining := ExtractPhrases(freeText)
	for _, phrase := range phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		p.All = append(p.All, phraseGroup(phrase))
	}

	for _, token := range tokenSplitRe.Split(remaining, -1) {
		if token == "" {
			continue
		}
		p.All = append(p.All, tokenGroup(token))
	}

	if err := applyFieldArgs(p, args); err != nil {
		return nil, err
	}
	return p, nil
}

// ExtractPhrases trả về các quoted phrases và phần free text còn lại.
func ExtractPhrases(s string) ([]string, string) {
	matches := quotedPhraseRe.FindAllStringSubmatch(s, -1)
	phrases := make([]string, 0, len(matches))
	for _, m := range matches {
		phrases = append(phrases, m[1])
	}
	remaining := quotedPhraseRe.ReplaceAllString(s, " ")
	return phrases, remaining
}

// phraseGroup OR-group cho một quoted phrase: substring trên mọi text
// field, postal so sánh với stored value đã bỏ spaces.
func phraseGroup(phrase string) Group {
	return Group{Any: []Condition{
		substring(FieldAddress, phrase),
		substring(FieldCity, phrase),
		substring(FieldRegion, phrase),
		substring(FieldAgent, phrase),
		substring(FieldBroker, phrase),
		{Field: FieldPostal, Kind: MatchSubstring, Value: phrase, StripSpaces: true},
		substring(FieldLatitude, phrase),
		substring(FieldLongitude, phrase),
	}}
}

// tokenGroup chọn OR-group template theo tag của token.
func tokenGroup(token string) Group {
	textAny := []Condition{
		substring(FieldAddress, token),
		substring(FieldCity, token),
		substring(FieldRegion, token),
		substring(FieldAgent, token),
		substring(FieldBroker, token),
	}

	switch ClassifyToken(token) {
	case TagFSA, TagFullPostal:
		cleaned := CleanPostal(token)
		return Group{Any: append(textAny,
			Condition{Field: FieldLatitude, Kind: MatchNumericPrefix, Value: cleaned},
			Condition{Field: FieldLongitude, Kind: MatchNumericPrefix, Value: cleaned},
			Condition{Field: FieldPostal, Kind: MatchPrefix, Value: cleaned, StripSpaces: true},
		)}
	case TagUSZip5, TagUSZip9:
		zip, _, _ := strings.Cut(token, "-")
		return Group{Any: append(textAny,
			Condition{Field: FieldLatitude, Kind: MatchNumericPrefix, Value: CleanPostal(token)},
			Condition{Field: FieldLongitude, Kind: MatchNumericPrefix, Value: CleanPostal(token)},
			Condition{Field: FieldPostal, Kind: MatchPrefix, Value: zip, StripSpaces: true},
		)}
	case TagNumeric:
		return Group{Any: append(textAny,
			prefix(FieldLatitude, token),
			prefix(FieldLongitude, token),
			Condition{Field: FieldPostal, Kind: MatchSubstring, Value: CleanPostal(token), StripSpaces: true},
		)}
	default: // generic
		return Group{Any: append(textAny,
			substring(FieldLatitude, token),
			substring(FieldLongitude, token),
			Condition{Field: FieldPostal, Kind: MatchSubstring, Value: CleanPostal(token), StripSpaces: true},
		)}
	}
}

// applyFieldArgs AND thêm mỗi explicit filter có mặt vào predicate.
func applyFieldArgs(p *Predicate, args FieldArgs) error {
	and := func(c Condition) {
		p.All = append(p.All, Group{Any: []Condition{c}})
	}

	if v := strings.TrimSpace(args.Address); v != "" {
		if allDigitsRe.MatchString(v) {
			// House number: phải là leading token của address.
			and(prefix(FieldAddress, v+" "))
		} else {
			and(Condition{
				Field:       FieldAddress,
				Kind:        MatchSubstring,
				Value:       strings.ReplaceAll(v, " ", ""),
				StripSpaces: true,
			})
		}
	}
	if v := strings.TrimSpace(args.Latitude); v != "" {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%w: lat=%q", ErrBadFilter, args.Latitude)
		}
		and(prefix(FieldLatitude, v))
	}
	if v := strings.TrimSpace(args.Longitude); v != "" {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%w: lon=%q", ErrBadFilter, args.Longitude)
		}
		and(prefix(FieldLongitude, v))
	}
	if v := args.Postal; v != "" {
		and(Condition{Field: FieldPostal, Kind: MatchPrefix, Value: CleanPostal(v), StripSpaces: true})
	}
	if v := args.City; v != "" {
		and(substring(FieldCity, v))
	}
	if v := args.Agent; v != "" {
		and(substring(FieldAgent, v))
	}
	if v := args.Broker; v != "" {
		and(substring(FieldBroker, v))
	}
	// Hai tên lịch sử của region filter; province thắng khi có cả hai.
	if region := firstNonEmpty(args.Province, args.State); region != "" {
		and(prefix(FieldRegion, region))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
