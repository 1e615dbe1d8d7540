package shapepasses

import "github.com/moznion/go-optional"

func optionalSome(s string) optional.Option[string] {
	return optional.Some(s)
}
