// Package taxonomy holds the FGC 2.3 cat vocalization table.
//
// The table is fixed at compile time and never mutated; every accessor hands
// out copies so callers cannot alter it.
package taxonomy

// Category groups FGC classes by the kind of situation they express.
type Category string

const (
	CategoryFood      Category = "FOOD"
	CategoryLife      Category = "LIFE"
	CategoryFight     Category = "FIGHT"
	CategorySex       Category = "SEX"
	CategoryComplaint Category = "COMPLAINT"
)

// SoundType describes the temporal shape of a vocalization.
type SoundType string

const (
	SoundTypeSingle   SoundType = "SS"
	SoundTypeRepeated SoundType = "RS"
	SoundTypeComplex  SoundType = "CSS"
)

// Label returns the human readable name of the sound type.
func (s SoundType) Label() string {
	switch s {
	case SoundTypeSingle:
		return "Single Sound"
	case SoundTypeRepeated:
		return "Repeated Sequence"
	case SoundTypeComplex:
		return "Complex Sequence"
	}
	return string(s)
}

// Gender is the optional demographic tag of a class.
type Gender string

const (
	GenderAdult  Gender = "Adult"
	GenderYoung  Gender = "Young"
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
)

// FGCClass is one entry of the vocalization taxonomy.
type FGCClass struct {
	Code         string    `json:"code"`
	Category     Category  `json:"category"`
	Definition   string    `json:"definition"`
	Vocalization string    `json:"vocalization"`
	Description  string    `json:"description"`
	Gender       Gender    `json:"gender,omitempty"`
	SoundType    SoundType `json:"sound_type"`
}

// CategoryInfo is the display metadata of a category.
type CategoryInfo struct {
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
}

var byCode = func() map[string]int {
	m := make(map[string]int, len(classes))
	for i, c := range classes {
		m[c.Code] = i
	}
	return m
}()

// All returns every class in table order.
func All() []FGCClass {
	out := make([]FGCClass, len(classes))
	copy(out, classes)
	return out
}

// Len returns the number of classes in the table.
func Len() int { return len(classes) }

// At returns the class at index i in table order. It panics when i is out of range.
func At(i int) FGCClass { return classes[i] }

// Get looks up a class by its code.
func Get(code string) (FGCClass, bool) {
	i, ok := byCode[code]
	if !ok {
		return FGCClass{}, false
	}
	return classes[i], true
}

// ByCategory returns the classes of one category in table order.
func ByCategory(category Category) []FGCClass {
	var out []FGCClass
	for _, c := range classes {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// Categories returns the category metadata in wheel order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// CategoryOf returns the metadata of a category.
func CategoryOf(category Category) (CategoryInfo, bool) {
	for _, c := range categories {
		if c.Category == category {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	_, ok := CategoryOf(c)
	return c, ok
}
