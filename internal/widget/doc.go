// Package widget is the small toolkit layer the examples are written against.
//
// Interactive widgets never call back into their owner. They return a
// tea.Cmd that delivers an Event, and the owning model switches on
// Event.Kind and Event.ID inside Update:
//
//	case widget.Event:
//		if msg.Kind == widget.ButtonPressed && msg.ID == "btn_inc" {
//			m.counter.Increment()
//		}
//
// Focus is tracked by FocusRing; the chrome helpers (Header, Footer, Screen)
// draw the frame every example shares.
package widget
