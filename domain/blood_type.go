package domain

// Closed set of ABO/Rh blood groups accepted anywhere in the system.
const (
	BloodTypeAPos  = "A+"
	BloodTypeANeg  = "A-"
	BloodTypeBPos  = "B+"
	BloodTypeBNeg  = "B-"
	BloodTypeABPos = "AB+"
	BloodTypeABNeg = "AB-"
	BloodTypeOPos  = "O+"
	BloodTypeONeg  = "O-"
)

var BloodTypes = []string{
	BloodTypeAPos, BloodTypeANeg,
	BloodTypeBPos, BloodTypeBNeg,
	BloodTypeABPos, BloodTypeABNeg,
	BloodTypeOPos, BloodTypeONeg,
}

// IsValidBloodType is an exact, case-sensitive membership check.
func IsValidBloodType(t string) bool {
	for _, bt := range BloodTypes {
		if bt == t {
			return true
		}
	}
	return false
}

type BloodTypeQuantity struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// SanitizeBloodTypes drops entries with an empty or unknown type or a negative
// quantity. Repeated types collapse into one entry holding the last quantity,
// kept at the position of the first occurrence.
func SanitizeBloodTypes(in []BloodTypeQuantity) []BloodTypeQuantity {
	out := make([]BloodTypeQuantity, 0, len(in))
	index := make(map[string]int, len(in))
	for _, item := range in {
		if item.Type == "" || !IsValidBloodType(item.Type) || item.Quantity < 0 {
			continue
		}
		if i, ok := index[item.Type]; ok {
			out[i].Quantity = item.Quantity
			continue
		}
		index[item.Type] = len(out)
		out = append(out, item)
	}
	return out
}

// FindBloodType returns the entry for bloodType, if any.
func FindBloodType(items []BloodTypeQuantity, bloodType string) (BloodTypeQuantity, bool) {
	for _, item := range items {
		if item.Type == bloodType {
			return item, true
		}
	}
	return BloodTypeQuantity{}, false
}
