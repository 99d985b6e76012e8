package turbo

// Fixed-arity async groups. Each AsyncN starts its N typed jobs
// concurrently under the group options and returns a ResultN whose
// positional outcome fields match declaration order, regardless of
// completion order. The error is non-nil only under throwOnFailure
// semantics (see WithThrowOnFailure).

// Result1 aggregates a one-job group.
type Result1[A any] struct {
	OK    bool
	First Outcome[A]
}

// Async1 runs a single job as a group. Useful when group-level options
// (timeout, throwOnFailure) are wanted around one job.
func Async1[A any](s *Scope, first *Job[A], opts ...GroupOption) (Result1[A], error) {
	raws, ok, err := runGroup(s, newGroupConfig(opts), []memberRunner{erase(first)})
	return Result1[A]{OK: ok, First: restore[A](raws[0])}, err
}

// Result2 aggregates a two-job group.
type Result2[A, B any] struct {
	OK     bool
	First  Outcome[A]
	Second Outcome[B]
}

// Async2 runs two typed jobs concurrently.
func Async2[A, B any](s *Scope, first *Job[A], second *Job[B], opts ...GroupOption) (Result2[A, B], error) {
	raws, ok, err := runGroup(s, newGroupConfig(opts), []memberRunner{erase(first), erase(second)})
	return Result2[A, B]{OK: ok, First: restore[A](raws[0]), Second: restore[B](raws[1])}, err
}

// Result3 aggregates a three-job group.
type Result3[A, B, C any] struct {
	OK     bool
	First  Outcome[A]
	Second Outcome[B]
	Third  Outcome[C]
}

// Async3 runs three typed jobs concurrently.
func Async3[A, B, C any](s *Scope, first *Job[A], second *Job[B], third *Job[C], opts ...GroupOption) (Result3[A, B, C], error) {
	raws, ok, err := runGroup(s, newGroupConfig(opts), []memberRunner{erase(first), erase(second), erase(third)})
	return Result3[A, B, C]{OK: ok, First: restore[A](raws[0]), Second: restore[B](raws[1]), Third: restore[C](raws[2])}, err
}

// Result4 aggregates a four-job group.
type Result4[A, B, C, D any] struct {
	OK     bool
	First  Outcome[A]
	Second Outcome[B]
	Third  Outcome[C]
	Fourth Outcome[D]
}

// Async4 runs four typed jobs concurrently.
func Async4[A, B, C, D any](s *Scope, first *Job[A], second *Job[B], third *Job[C], fourth *Job[D], opts ...GroupOption) (Result4[A, B, C, D], error) {
	raws, ok, err := runGroup(s, newGroupConfig(opts), []memberRunner{erase(first), erase(second), erase(third), erase(fourth)})
	return Result4[A, B, C, D]{OK: ok, First: restore[A](raws[0]), Second: restore[B](raws[1]), Third: restore[C](raws[2]), Fourth: restore[D](raws[3])}, err
}

// Result5 aggregates a five-job group.
type Result5[A, B, C, D, E any] struct {
	OK     bool
	First  Outcome[A]
	Second Outcome[B]
	Third  Outcome[C]
	Fourth Outcome[D]
	Fifth  Outcome[E]
}

// Async5 runs five typed jobs concurrently.
func Async5[A, B, C, D, E any](s *Scope, first *Job[A], second *Job[B], third *Job[C], fourth *Job[D], fifth *Job[E], opts ...GroupOption) (Result5[A, B, C, D, E], error) {
	raws, ok, err := runGroup(s, newGroupConfig(opts), []memberRunner{erase(first), erase(second), erase(third), erase(fourth), erase(fifth)})
	return Result5[A, B, C, D, E]{OK: ok, First: restore[A](raws[0]), Second: restore[B](raws[1]), Third: restore[C](raws[2]), Fourth: restore[D](raws[3]), Fifth: restore[E](raws[4])}, err
}

// Result6 aggregates a six-job group.
type Result6[A, B, C, D, E, F any] struct {
	OK     bool
	First  Outcome[A]
	Second Outcome[B]
	Third  Outcome[C]
	Fourth Outcome[D]
	Fifth  Outcome[E]
	Sixth  Outcome[F]
}

// Async6 runs six typed jobs concurrently.
func Async6[A, B, C, D, E, F any](s *Scope, first *Job[A], second *Job[B], third *Job[C], fourth *Job[D], fifth *Job[E], sixth *Job[F], opts ...GroupOption) (Result6[A, B, C, D, E, F], error) {
	raws, ok, err := runGroup(s, newGroupConfig(opts), []memberRunner{erase(first), erase(second), erase(third), erase(fourth), erase(fifth), erase(sixth)})
	return Result6[A, B, C, D, E, F]{OK: ok, First: restore[A](raws[0]), Second: restore[B](raws[1]), Third: restore[C](raws[2]), Fourth: restore[D](raws[3]), Fifth: restore[E](raws[4]), Sixth: restore[F](raws[5])}, err
}

// Result7 aggregates a seven-job group.
type Result7[A, B, C, D, E, F, G any] struct {
	OK      bool
	First   Outcome[A]
	Second  Outcome[B]
	Third   Outcome[C]
	Fourth  Outcome[D]
	Fifth   Outcome[E]
	Sixth   Outcome[F]
	Seventh Outcome[G]
}

// Async7 runs seven typed jobs concurrently.
func Async7[A, B, C, D, E, F, G any](s *Scope, first *Job[A], second *Job[B], third *Job[C], fourth *Job[D], fifth *Job[E], sixth *Job[F], seventh *Job[G], opts ...GroupOption) (Result7[A, B, C, D, E, F, G], error) {
	raws, ok, err := runGroup(s, newGroupConfig(opts), []memberRunner{erase(first), erase(second), erase(third), erase(fourth), erase(fifth), erase(sixth), erase(seventh)})
	return Result7[A, B, C, D, E, F, G]{OK: ok, First: restore[A](raws[0]), Second: restore[B](raws[1]), Third: restore[C](raws[2]), Fourth: restore[D](raws[3]), Fifth: restore[E](raws[4]), Sixth: restore[F](raws[5]), Seventh: restore[G](raws[6])}, err
}

// Result8 aggregates an eight-job group.
type Result8[A, B, C, D, E, F, G, H any] struct {
	OK      bool
	First   Outcome[A]
	Second  Outcome[B]
	Third   Outcome[C]
	Fourth  Outcome[D]
	Fifth   Outcome[E]
	Sixth   Outcome[F]
	Seventh Outcome[G]
	Eighth  Outcome[H]
}

// Async8 runs eight typed jobs concurrently.
func Async8[A, B, C, D, E, F, G, H any](s *Scope, first *Job[A], second *Job[B], third *Job[C], fourth *Job[D], fifth *Job[E], sixth *Job[F], seventh *Job[G], eighth *Job[H], opts ...GroupOption) (Result8[A, B, C, D, E, F, G, H], error) {
	raws, ok, err := runGroup(s, newGroupConfig(opts), []memberRunner{erase(first), erase(second), erase(third), erase(fourth), erase(fifth), erase(sixth), erase(seventh), erase(eighth)})
	return Result8[A, B, C, D, E, F, G, H]{OK: ok, First: restore[A](raws[0]), Second: restore[B](raws[1]), Third: restore[C](raws[2]), Fourth: restore[D](raws[3]), Fifth: restore[E](raws[4]), Sixth: restore[F](raws[5]), Seventh: restore[G](raws[6]), Eighth: restore[H](raws[7])}, err
}

// Result9 aggregates a nine-job group.
type Result9[A, B, C, D, E, F, G, H, I any] struct {
	OK      bool
	First   Outcome[A]
	Second  Outcome[B]
	Third   Outcome[C]
	Fourth  Outcome[D]
	Fifth   Outcome[E]
	Sixth   Outcome[F]
	Seventh Outcome[G]
	Eighth  Outcome[H]
	Ninth   Outcome[I]
}

// Async9 runs nine typed jobs concurrently.
func Async9[A, B, C, D, E, F, G, H, I any](s *Scope, first *Job[A], second *Job[B], third *Job[C], fourth *Job[D], fifth *Job[E], sixth *Job[F], seventh *Job[G], eighth *Job[H], ninth *Job[I], opts ...GroupOption) (Result9[A, B, C, D, E, F, G, H, I], error) {
	raws, ok, err := runGroup(s, newGroupConfig(opts), []memberRunner{erase(first), erase(second), erase(third), erase(fourth), erase(fifth), erase(sixth), erase(seventh), erase(eighth), erase(ninth)})
	return Result9[A, B, C, D, E, F, G, H, I]{OK: ok, First: restore[A](raws[0]), Second: restore[B](raws[1]), Third: restore[C](raws[2]), Fourth: restore[D](raws[3]), Fifth: restore[E](raws[4]), Sixth: restore[F](raws[5]), Seventh: restore[G](raws[6]), Eighth: restore[H](raws[7]), Ninth: restore[I](raws[8])}, err
}

// Result10 aggregates a ten-job group.
type Result10[A, B, C, D, E, F, G, H, I, J any] struct {
	OK      bool
	First   Outcome[A]
	Second  Outcome[B]
	Third   Outcome[C]
	Fourth  Outcome[D]
	Fifth   Outcome[E]
	Sixth   Outcome[F]
	Seventh Outcome[G]
	Eighth  Outcome[H]
	Ninth   Outcome[I]
	Tenth   Outcome[J]
}

// Async10 runs ten typed jobs concurrently.
func Async10[A, B, C, D, E, F, G, H, I, J any](s *Scope, first *Job[A], second *Job[B], third *Job[C], fourth *Job[D], fifth *Job[E], sixth *Job[F], seventh *Job[G], eighth *Job[H], ninth *Job[I], tenth *Job[J], opts ...GroupOption) (Result10[A, B, C, D, E, F, G, H, I, J], error) {
	raws, ok, err := runGroup(s, newGroupConfig(opts), []memberRunner{erase(first), erase(second), erase(third), erase(fourth), erase(fifth), erase(sixth), erase(seventh), erase(eighth), erase(ninth), erase(tenth)})
	return Result10[A, B, C, D, E, F, G, H, I, J]{OK: ok, First: restore[A](raws[0]), Second: restore[B](raws[1]), Third: restore[C](raws[2]), Fourth: restore[D](raws[3]), Fifth: restore[E](raws[4]), Sixth: restore[F](raws[5]), Seventh: restore[G](raws[6]), Eighth: restore[H](raws[7]), Ninth: restore[I](raws[8]), Tenth: restore[J](raws[9])}, err
}
