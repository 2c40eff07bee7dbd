// SPDX-License-Identifier: MIT

package compiler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "lvphoton"
	subsystem        = "compiler"
)

var (
	compilationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "compilations_total",
			Help:      "Total number of circuit compilations",
		},
		[]string{"mode", "result"}, // mode: "heralded", "postselected"; result: "success", "error"
	)

	gatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "gates_total",
			Help:      "Total number of gates translated, by canonical kind",
		},
		[]string{"kind"},
	)

	ancillaModesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "ancilla_modes_total",
			Help:      "Total number of ancilla modes allocated",
		},
	)
)

func modeLabel(heralded bool) string {
	if heralded {
		return "heralded"
	}

	return "postselected"
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}

	return "success"
}
