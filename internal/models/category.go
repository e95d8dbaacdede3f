package models

// Category is a legal topic detected from message text.
type Category string

// CategoryNone means no category keyword matched.
const CategoryNone Category = ""

// Declaration order is the tie-break order for classification.
const (
	CategoryFamily      Category = "family"
	CategoryProperty    Category = "property"
	CategoryLabour      Category = "labour"
	CategoryCriminal    Category = "criminal"
	CategoryConsumer    Category = "consumer"
	CategoryCyber       Category = "cyber"
	CategoryEmployment  Category = "employment"
	CategoryHumanRights Category = "human_rights"
)

// Categories lists every category in tie-break order.
var Categories = []Category{
	CategoryFamily,
	CategoryProperty,
	CategoryLabour,
	CategoryCriminal,
	CategoryConsumer,
	CategoryCyber,
	CategoryEmployment,
	CategoryHumanRights,
}

func (c Category) IsNone() bool {
	return c == CategoryNone
}

func (c Category) String() string {
	return string(c)
}
