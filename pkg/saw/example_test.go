package saw_test

import (
	"fmt"

	"github.com/matzehuels/sawtooth/pkg/saw"
)

func ExamplePath() {
	fmt.Println(saw.Path(100, 3000, 30, 1))
	// Output:
	// M0 100 L1500 85 L1500 115 L3000 100
}

func ExampleCommands() {
	cmds := saw.Commands(100, 3000, 30, 8)
	r := saw.Bounds(cmds)
	fmt.Printf("%d commands, %vx%v\n", len(cmds), r.Width(), r.Height())
	fmt.Println(cmds[len(cmds)-1])
	// Output:
	// 25 commands, 3000x30
	// L3000 100
}
