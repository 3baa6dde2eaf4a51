// Package async provides small goroutine coordination helpers: futures
// for one-shot computations (Run, Await, WaitAll, WaitAny) and condition
// polling (WaitUntil) for readiness checks that have no channel to wait
// on.
package async
