// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ofundd/mode"
	"github.com/bitmark-inc/ofundd/processor"
	"github.com/bitmark-inc/ofundd/rpc"
	"github.com/bitmark-inc/ofundd/rpc/certificate"
	"github.com/bitmark-inc/ofundd/rpc/listeners"
	"github.com/bitmark-inc/ofundd/storage"
	"github.com/bitmark-inc/ofundd/tokenledger"
)

var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands are allowed to run before the configuration is read
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and perform
	// no operations that need to access the database
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		_ = lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database.Name)

	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	settings, err := theConfiguration.settings()
	if nil != err {
		log.Criticalf("processor settings error: %s", err)
		exitwithstatus.Message("processor settings error: %s", err)
	}

	// unit movements share the processor's storage transaction
	units, err := tokenledger.NewLocal(logger.New("tokenledger"), storage.Current)
	if nil != err {
		log.Criticalf("tokenledger initialise error: %s", err)
		exitwithstatus.Message("tokenledger initialise error: %s", err)
	}

	metrics := processor.NewMetrics()
	metrics.Registry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	proc, err := processor.New(logger.New("processor"), settings, units, metrics)
	if nil != err {
		log.Criticalf("processor initialise error: %s", err)
		exitwithstatus.Message("processor initialise error: %s", err)
	}
	log.Infof("program: %s", settings.Program.ID())

	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	err = rpc.Initialise(&theConfiguration.ClientRPC, proc, settings.Program.ID(), version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	if len(theConfiguration.Metrics.Listen) > 0 {
		metricsListener, err := startMetrics(&theConfiguration.Metrics, metrics)
		if nil != err {
			log.Criticalf("metrics initialise error: %s", err)
			exitwithstatus.Message("metrics initialise error: %s", err)
		}
		defer metricsListener.Close()
	} else {
		log.Info("metrics: disabled")
	}

	mode.Set(mode.Serving)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}

// serve the processor registry on /metrics
func startMetrics(configuration *listeners.HTTPConfiguration, metrics *processor.Metrics) (listeners.Listener, error) {
	log := logger.New("metrics")

	tlsConfig, _, err := certificate.Get(log, "metrics", configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))

	l, err := listeners.NewHTTP(configuration, log, mux, tlsConfig)
	if nil != err {
		return nil, err
	}
	err = l.Serve()
	if nil != err {
		_ = l.Close()
		return nil, err
	}
	return l, nil
}
