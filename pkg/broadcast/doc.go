// Package broadcast implements an in-process publisher/listener pattern
// with type-safe events.
//
// A Publisher[T] fans values out to any number of listeners, each reading
// from its own buffered channel. Delivery never blocks the publisher: a
// listener that falls behind misses events and is unregistered. Listeners
// carry a uuid identity plus a human-readable nickname for diagnostics,
// and can be scoped to a context so cancellation unregisters them.
//
//	pub := broadcast.NewPublisher[string](broadcast.WithNickname("newsdesk"))
//	sub := pub.Register(ctx, "customer-1")
//
//	go func() {
//	    for ev := range sub.Events() {
//	        fmt.Println(ev.Data)
//	    }
//	}()
//
//	_ = pub.Notify("extra extra")
package broadcast
