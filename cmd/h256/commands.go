package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kaspanet/h256/infrastructure/logger"
	"github.com/kaspanet/h256/util/h256"
	"github.com/pkg/errors"
)

const stdinName = "-"

func sum(conf *sumConfig, stdin io.Reader, stdout io.Writer) error {
	onEnd := logger.LogAndMeasureExecutionTime(log, "sum")
	defer onEnd()

	if len(conf.Args.Files) == 0 {
		hash, err := h256.Sha256Reader(stdin)
		if err != nil {
			return errors.Wrap(err, "error hashing stdin")
		}
		fmt.Fprintf(stdout, "%s  %s\n", hash, stdinName)
		return nil
	}

	for _, fileName := range conf.Args.Files {
		hash, err := sumFile(fileName)
		if err != nil {
			return err
		}
		log.Debugf("Hashed %s", fileName)
		fmt.Fprintf(stdout, "%s  %s\n", hash, fileName)
	}
	return nil
}

func sumFile(fileName string) (h256.H256, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return h256.H256{}, errors.WithStack(err)
	}
	defer file.Close()

	hash, err := h256.Sha256Reader(file)
	if err != nil {
		return h256.H256{}, errors.Wrapf(err, "error hashing %s", fileName)
	}
	return hash, nil
}

func parse(conf *parseConfig, stdout io.Writer) error {
	for i, hashString := range conf.Args.Hashes {
		hash, err := h256.FromString(hashString)
		if err != nil {
			return errors.Wrapf(err, "could not parse hash #%d", i+1)
		}
		fmt.Fprintln(stdout, hash)
	}
	return nil
}

func sortHashes(conf *sortConfig, stdin io.Reader, stdout io.Writer) error {
	var hashes []h256.H256
	scanner := bufio.NewScanner(stdin)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		hash, err := h256.FromString(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNumber)
		}
		hashes = append(hashes, hash)
	}
	if err := scanner.Err(); err != nil {
		return errors.WithStack(err)
	}

	log.Debugf("Sorting %d hashes", len(hashes))
	h256.Sort(hashes)
	if conf.Unique {
		hashes = uniqueSorted(hashes)
	}

	for _, hash := range hashes {
		fmt.Fprintln(stdout, hash)
	}
	return nil
}

// uniqueSorted removes consecutive duplicates from a sorted slice in place.
func uniqueSorted(hashes []h256.H256) []h256.H256 {
	if len(hashes) == 0 {
		return hashes
	}
	unique := hashes[:1]
	for _, hash := range hashes[1:] {
		if !hash.Equal(unique[len(unique)-1]) {
			unique = append(unique, hash)
		}
	}
	return unique
}

func compare(conf *compareConfig, stdout io.Writer) error {
	first, err := h256.FromString(conf.Args.First)
	if err != nil {
		return errors.Wrap(err, "could not parse A")
	}
	second, err := h256.FromString(conf.Args.Second)
	if err != nil {
		return errors.Wrap(err, "could not parse B")
	}
	fmt.Fprintln(stdout, first.Cmp(second))
	return nil
}
