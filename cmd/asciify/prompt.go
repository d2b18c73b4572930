package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type promptAnswers struct {
	Width  int
	Height int
	Scaled bool
	Path   string
}

var guides = [4]string{
	"ASCII Width: ",
	"ASCII Height: ",
	"Scaled Gradient (bool): ",
	"File Path: ",
}

// prompt asks for the conversion arguments one line at a time.
func prompt(r io.Reader, w io.Writer) (*promptAnswers, error) {
	scanner := bufio.NewScanner(r)
	values := make([]string, 0, len(guides))

	for _, guide := range guides {
		fmt.Fprint(w, guide)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}

			return nil, fmt.Errorf("no answer for %q", strings.TrimSuffix(guide, ": "))
		}

		values = append(values, strings.TrimSpace(scanner.Text()))
	}

	fmt.Fprintln(w)

	width, err := strconv.Atoi(values[0])

	if err != nil || width < 1 {
		return nil, fmt.Errorf("invalid width: %q", values[0])
	}

	height, err := strconv.Atoi(values[1])

	if err != nil || height < 1 {
		return nil, fmt.Errorf("invalid height: %q", values[1])
	}

	scaled, err := strconv.ParseBool(values[2])

	if err != nil {
		return nil, fmt.Errorf("invalid scaled gradient value: %q", values[2])
	}

	if len(values[3]) < 1 {
		return nil, fmt.Errorf("empty file path")
	}

	return &promptAnswers{
		Width:  width,
		Height: height,
		Scaled: scaled,
		Path:   values[3],
	}, nil
}
