// Package enumx adds name/value conveniences to Go's const-based
// enumerations via an explicit member registry.
//
//	type Weekday int
//
//	const (
//	    Monday Weekday = iota
//	    Tuesday
//	)
//
//	var Weekdays = enumx.MustNewRegistry(
//	    enumx.M("Monday", Monday),
//	    enumx.M("Tuesday", Tuesday),
//	)
//
//	Weekdays.Names()            // ["Monday", "Tuesday"]
//	Weekdays.NameOf(Tuesday)    // "Tuesday", true
//	Weekdays.ContainsValue(Weekday(9)) // false
//
// All collection methods preserve definition order.
package enumx
