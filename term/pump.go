package term

import "github.com/battlesnakeio/snek/input"

// pump polls the terminal on its own goroutine and forwards intents until
// poll reports the terminal is gone or done is closed.
func pump(done <-chan struct{}, poll func() (input.Intent, bool)) <-chan input.Intent {
	intents := make(chan input.Intent, 16)
	go func() {
		defer close(intents)
		for {
			i, ok := poll()
			if !ok {
				return
			}
			select {
			case intents <- i:
			case <-done:
				return
			}
		}
	}()
	return intents
}
