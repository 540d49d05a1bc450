package frame_test

import (
	"fmt"
	"log"

	"github.com/ssargent/bifrost/pkg/frame"
)

// ExampleBuilder demonstrates packing a payload into a frame.
func ExampleBuilder() {
	buf := make([]byte, 64)
	b, err := frame.NewBuilder(buf)
	if err != nil {
		log.Fatal(err)
	}

	encoded, err := b.Build([]byte("hello"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("frame size: %d bytes\n", len(encoded))
	fmt.Printf("next counter: %d\n", b.Counter())

	// Output:
	// frame size: 15 bytes
	// next counter: 1
}

// ExampleParse demonstrates decoding a single frame.
func ExampleParse() {
	b, err := frame.NewBuilder(make([]byte, 64))
	if err != nil {
		log.Fatal(err)
	}
	encoded, err := b.Build([]byte("telemetry"))
	if err != nil {
		log.Fatal(err)
	}

	f, consumed, err := frame.Parse(encoded)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("counter: %d\n", f.Header.Counter)
	fmt.Printf("payload: %s\n", f.Payload)
	fmt.Printf("consumed: %d\n", consumed)

	// Output:
	// counter: 0
	// payload: telemetry
	// consumed: 19
}

// ExampleScan demonstrates recovering frames from a corrupted stream.
func ExampleScan() {
	b, err := frame.NewBuilder(make([]byte, 64))
	if err != nil {
		log.Fatal(err)
	}

	var stream []byte
	for _, p := range []string{"first", "second", "third"} {
		encoded, err := b.Build([]byte(p))
		if err != nil {
			log.Fatal(err)
		}
		stream = append(stream, encoded...)
	}

	// Flip one payload byte of the middle frame.
	stream[frame.FrameSize(len("first"))+frame.HeaderSize] ^= 0xFF

	n := frame.Scan(stream, func(f *frame.Frame) {
		fmt.Printf("decoded %q (counter %d)\n", f.Payload, f.Header.Counter)
	})
	fmt.Printf("frames: %d\n", n)

	// Output:
	// decoded "first" (counter 0)
	// decoded "third" (counter 2)
	// frames: 2
}
