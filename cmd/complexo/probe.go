package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v2"

	"github.com/complexo-io/complexo/hwprofile"
	"github.com/complexo-io/complexo/progress"
)

func runProbe(args []string) error {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	prom := fs.Bool("prometheus", false, "render as a Prometheus text-exposition snapshot")
	if err := fs.Parse(args); err != nil {
		return err
	}

	profile, err := hwprofile.Capture(context.Background(), progress.NewConsole())
	if err != nil {
		return err
	}

	if *prom {
		return renderPrometheus(profile)
	}
	return renderYAML(profile)
}

func renderYAML(profile hwprofile.Profile) error {
	data, err := yaml.Marshal(profile)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func renderPrometheus(profile hwprofile.Profile) error {
	registry := prometheus.NewRegistry()

	memory := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "complexo_hwprofile_memory_bytes",
		Help: "Total physical memory captured on the calibration host.",
	})
	memory.Set(float64(profile.MemoryBytes))

	info := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "complexo_hwprofile_info",
		Help:        "Constant 1, carrying the host's CPU and OS description as labels.",
		ConstLabels: prometheus.Labels{"cpu_desc": profile.CPUDesc, "os_desc": profile.OSDesc},
	})
	info.Set(1)

	registry.MustRegister(memory, info)

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather prometheus metrics: %w", err)
	}

	encoder := expfmt.NewEncoder(os.Stdout, expfmt.FmtText)
	for _, mf := range families {
		if err := encoder.Encode(mf); err != nil {
			return fmt.Errorf("encode prometheus metric family: %w", err)
		}
	}
	return nil
}
