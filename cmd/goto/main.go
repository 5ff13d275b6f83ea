package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hwse/goto/emulator"
	"github.com/hwse/goto/tui"
)

func main() {
	var source string
	var input string
	var verbose bool
	var step bool

	flag.StringVar(&source, "s", "", "the goto program source file")
	flag.StringVar(&source, "source", "", "the goto program source file")
	flag.StringVar(&input, "i", "", "the memory on which the goto program works")
	flag.StringVar(&input, "input", "", "the memory on which the goto program works")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&step, "t", false, "Interactive stepper")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(source) == 0 || len(input) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	srcf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	err = emu.LoadSource(srcf)
	srcf.Close()
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	err = emu.LoadMemory(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	emu.Reset()

	if step {
		tui.StartUI(emu)
		return
	}

	fmt.Printf("input: %v\n", emu.Machine.Memory)
	if err := emu.Run(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("result: %v\n", emu.Result())
}
