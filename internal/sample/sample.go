// Package sample holds the embedded records and the column tree they are
// shown under.
package sample

import (
	"github.com/jdlms/flexheader/internal/table"
	"github.com/jdlms/flexheader/internal/types"
)

var defaultData = []types.Person{
	{
		Tag:       "aaa",
		FirstName: "tanner",
		LastName:  "linsley",
		Age:       24,
		Visits:    100,
		Status:    "In Relationship",
		Progress:  50,
	},
	{
		Tag:       "bbb",
		FirstName: "tandy",
		LastName:  "miller",
		Age:       40,
		Visits:    40,
		Status:    "Single",
		Progress:  80,
	},
	{
		Tag:       "ccc",
		FirstName: "joe",
		LastName:  "dirte",
		Age:       45,
		Visits:    20,
		Status:    "Complicated",
		Progress:  10,
	},
}

// Records returns a fresh copy of the sample records.
func Records() []types.Person {
	records := make([]types.Person, len(defaultData))
	copy(records, defaultData)
	return records
}

// Columns returns the column tree. The test column sits beside two groups of
// uneven depth, so its header cell has to stretch down to the leaf row.
func Columns() []table.ColumnDef[types.Person] {
	return []table.ColumnDef[types.Person]{
		table.Group("hogehoge", "HOGEHOFE",
			table.Accessor("test", "", func(p types.Person) any { return p.Tag }).
				WithRowSpan(3),
			table.Group("hello", "Hello",
				table.Accessor("firstName", "", func(p types.Person) any { return p.FirstName }).
					WithRowSpan(2),
				table.Accessor("lastName", "Last Name", func(p types.Person) any { return p.LastName }).
					WithRowSpan(2),
			),
			table.Group("Info", "Info",
				table.Group("More Info", "More Info",
					table.Accessor("visits", "Visits", func(p types.Person) any { return p.Visits }),
					table.Accessor("status", "Status", func(p types.Person) any { return p.Status }),
					table.Accessor("progress", "Profile Progress", func(p types.Person) any { return p.Progress }),
				),
				table.Accessor("age", "Age", func(p types.Person) any { return p.Age }).
					WithRowSpan(2),
			),
		),
	}
}

// New builds the sample table over a fresh copy of the records.
func New() (*table.Table[types.Person], error) {
	return table.New(Columns(), Records())
}
