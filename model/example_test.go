package model_test

import (
	"fmt"

	"github.com/katalvlaran/lpbuild/model"
)

// ExampleNew assembles a tiny two-constraint model row by row and reads it
// back by coordinate and by name.
func ExampleNew() {
	m := model.New(model.WithRowBuild())
	_ = m.AddRow([]int{0, 2}, []float64{1, 3}, 0, 10, "capacity")
	_ = m.AddRow([]int{1}, []float64{2}, -5, 5, "balance")
	_ = m.SetColumnObjective(2, 7.5)

	fmt.Println(m.NumRows(), m.NumColumns(), m.NumElements())
	fmt.Println(m.GetElement(0, 2))
	fmt.Println(m.Row("balance"))
	// Output:
	// 2 3 3
	// 3
	// 1
}

// ExampleModel_AssociateString shows a symbolic coefficient bound after
// the matrix is built.
func ExampleModel_AssociateString() {
	m := model.New()
	_ = m.SetStringElement(0, 0, "price")
	m.AssociateString("price", 2.25)

	fmt.Println(m.GetElementAsString(0, 0))
	fmt.Println(m.GetElement(0, 0))
	// Output:
	// price
	// 2.25
}
