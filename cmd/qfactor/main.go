package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/lukaszgryglicki/tweezers/internal/tweezers"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s n ne [steps]\n", os.Args[0])
	os.Exit(2)
}

func main() {
	tweezers.DisableReflection = os.Getenv("NO_REFLECTION") != ""
	plot := os.Getenv("PLOT") != ""
	if len(os.Args) < 3 {
		usage()
	}
	n, err1 := strconv.ParseFloat(os.Args[1], 64)
	ne, err2 := strconv.ParseFloat(os.Args[2], 64)
	if err1 != nil || err2 != nil {
		usage()
	}
	steps := tweezers.QCurveSteps
	if len(os.Args) > 3 {
		v, err := strconv.Atoi(os.Args[3])
		if err != nil {
			usage()
		}
		steps = v
	}

	// Q does not depend on the particle radius.
	s, err := tweezers.NewSphere(1, n, ne)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	pts, err := tweezers.QCurve(s, steps)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	w := bufio.NewWriter(os.Stdout)
	for _, p := range pts {
		fmt.Fprintf(w, "%e %e\n", p.ThetaDeg, p.Q)
	}
	if err := w.Flush(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if plot {
		if err := tweezers.SaveQCurvePlot(tweezers.QCurvePlotOut, pts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
}
