package cli

import (
	"github.com/Makepad-fr/termtour/internal/app"
	"github.com/Makepad-fr/termtour/internal/examples/clicker"
	"github.com/Makepad-fr/termtour/internal/examples/counter"
	"github.com/Makepad-fr/termtour/internal/examples/greet"
	"github.com/Makepad-fr/termtour/internal/examples/hello"
	"github.com/Makepad-fr/termtour/internal/examples/layouts"
	"github.com/Makepad-fr/termtour/internal/examples/styles"
	"github.com/Makepad-fr/termtour/internal/examples/todo"
)

// Catalog lists the examples in tour order.
func Catalog() []app.Example {
	return []app.Example{
		{Name: "hello", Title: "Hello World", Summary: "A single static line of text", New: hello.New},
		{Name: "button", Title: "Button Click", Summary: "One button that raises a notification", New: clicker.New},
		{Name: "counter", Title: "Counter", Summary: "Increment, decrement and reset a number", New: counter.New},
		{Name: "input", Title: "Input Form", Summary: "Read a text field and greet the user", New: greet.New},
		{Name: "styles", Title: "Styling", Summary: "Hero banner, cards and variant buttons", New: styles.New},
		{Name: "layouts", Title: "Layouts", Summary: "Vertical and horizontal containers", New: layouts.New},
		{
			Name: "todo", Title: "Todo List", Summary: "Add, check off and delete tasks",
			New: todo.New, Intro: todo.Intro, Outro: todo.Outro,
		},
	}
}
