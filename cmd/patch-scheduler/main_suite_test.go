package main

import (
	"testing"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPatchScheduler(t *testing.T) {
	color.NoColor = true
	RegisterFailHandler(Fail)
	RunSpecs(t, "Patch Scheduler CLI Suite")
}
