package render

// TextStyle captures font and color for one kind of element.
type TextStyle struct {
	Bold       bool
	Size       float64 // points
	Color      [3]int
	LineHeight float64 // mm
	Uppercase  bool
}

// Page geometry in millimetres (A4).
const (
	marginTop    = 14.0
	marginBottom = 14.0
	marginSide   = 17.0
	bulletIndent = 4.0
)

// StyleMap centralizes the formatting of key resume elements.
var StyleMap = map[string]TextStyle{
	"name":           {Bold: true, Size: 18, Color: [3]int{23, 23, 23}, LineHeight: 8},
	"contact":        {Size: 10, Color: [3]int{82, 82, 82}, LineHeight: 5},
	"summary":        {Size: 10, Color: [3]int{64, 64, 64}, LineHeight: 5},
	"sectionHeading": {Bold: true, Size: 10, Color: [3]int{115, 115, 115}, LineHeight: 6, Uppercase: true},
	"paragraph":      {Size: 11, Color: [3]int{64, 64, 64}, LineHeight: 5.5},
	"bullet":         {Size: 10, Color: [3]int{64, 64, 64}, LineHeight: 5},
}

var ruleColor = [3]int{229, 229, 229}
