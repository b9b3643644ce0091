package query

// Field tên field trong predicate. Đây là tập đóng: chỉ các giá trị dưới
// đây được phép xuất hiện trong predicate, caller values không bao giờ
// trở thành field names.
type Field string

const (
	FieldAddress   Field = "address"
	FieldCity      Field = "city"
	FieldRegion    Field = "province"
	FieldPostal    Field = "postcode"
	FieldAgent     Field = "agent"
	FieldBroker    Field = "broker"
	FieldPrice     Field = "price"
	FieldLatitude  Field = "latitude"
	FieldLongitude Field = "longitude"
)

// MatchKind cách so sánh một condition với giá trị của field.
type MatchKind int

const (
	// MatchSubstring case-insensitive substring.
	MatchSubstring MatchKind = iota
	// MatchPrefix case-insensitive prefix.
	MatchPrefix
	// MatchExact so sánh bằng.
	MatchExact
	// MatchNumericPrefix prefix trên text rendering của giá trị số.
	MatchNumericPrefix
)

// Condition một phép so sánh (field, kind, value). Value luôn là literal
// data: compiler phải escape/bind nó, không bao giờ nối thẳng vào query
// text. StripSpaces yêu cầu bỏ spaces phía stored value trước khi so sánh
// (dùng cho postal và address filter).
type Condition struct {
	Field       Field
	Kind        MatchKind
	Value       string
	StripSpaces bool
}

// Group một OR-group: record match khi ít nhất một condition đúng.
type Group struct {
	Any []Condition
}

// Predicate AND của các OR-groups. Build mới cho mỗi request, không có
// shared state.
type Predicate struct {
	All []Group
}

// IsEmpty true khi predicate không có điều kiện nào (match tất cả).
func (p *Predicate) IsEmpty() bool {
	return p == nil || len(p.All) == 0
}

func substring(f Field, v string) Condition {
	return Condition{Field: f, Kind: MatchSubstring, Value: v}
}

func prefix(f Field, v string) Condition {
	return Condition{Field: f, Kind: MatchPrefix, Value: v}
}
