// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 TokenVault Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/tokenvault/vaultd/account"
	"github.com/tokenvault/vaultd/asset"
	"github.com/tokenvault/vaultd/fault"
	"github.com/tokenvault/vaultd/mode"
	"github.com/tokenvault/vaultd/publish"
	"github.com/tokenvault/vaultd/ratio"
	"github.com/tokenvault/vaultd/rpc"
	"github.com/tokenvault/vaultd/storage"
	"github.com/tokenvault/vaultd/vault"
	"github.com/tokenvault/vaultd/version"
	"github.com/tokenvault/vaultd/zmqutil"
)

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

	// these commands do not require the configuration and
	// process data needed for initial setup
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

	// these commands require the configuration and
	// perform enquiries on the configuration
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
	log.Infof("version: %s", version.Version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Network)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// the custody account must belong to the configured network
	custody, err := account.FromBase58(theConfiguration.Vault.Custody)
	if nil != err {
		log.Criticalf("custody account: %q error: %s", theConfiguration.Vault.Custody, err)
		exitwithstatus.Message("custody account: %q error: %s", theConfiguration.Vault.Custody, err)
	}
	if custody.IsTesting() != mode.IsTesting() {
		log.Criticalf("custody account: %q error: %s", custody, fault.WrongNetworkForAccount)
		exitwithstatus.Message("custody account: %q error: %s", custody, fault.WrongNetworkForAccount)
	}

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	readOnly := storage.ReadWrite
	if theConfiguration.ReadOnly {
		readOnly = storage.ReadOnly
	}
	err = storage.Initialise(theConfiguration.Database.Name, readOnly)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// bind the share accounting engine to the asset ledger
	log.Info("initialise vault")
	decimals := theConfiguration.Vault.Decimals
	if 0 == decimals {
		decimals = vault.DefaultDecimals
	}
	engine := vault.New(
		asset.NewStore(decimals),
		custody,
		ratio.Policy{
			VirtualShares:  theConfiguration.Vault.VirtualShares,
			VirtualAssets:  theConfiguration.Vault.VirtualAssets,
			MinimumDeposit: theConfiguration.Vault.MinimumDeposit,
		},
	)

	// initialise encryption
	err = zmqutil.StartAuthentication()
	if nil != err {
		log.Criticalf("zmq.AuthStart: error: %s", err)
		exitwithstatus.Message("zmq.AuthStart: error: %s", err)
	}

	// start up the publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version.Version, engine, theConfiguration.ReadOnly)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// watch the configuration file so policy changes apply without
	// a restart
	watcher, err := newConfigWatcher(configurationFile)
	if nil != err {
		log.Warnf("config watcher error: %s", err)
	} else if err := watcher.Start(); nil != err {
		log.Warnf("config watcher start error: %s", err)
	} else {
		go reloadLoop(log, watcher, configurationFile, engine)
	}

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

// re-read the configuration on change and apply the settings that are
// safe to adjust on a running node
func reloadLoop(log *logger.L, watcher *ConfigWatcher, configurationFile string, engine *vault.Vault) {
	for {
		select {
		case <-watcher.ChangeChannel():
			updated, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("configuration reload error: %s", err)
				continue
			}
			engine.SetMinimumDeposit(updated.Vault.MinimumDeposit)
			log.Infof("minimum deposit now: %d", updated.Vault.MinimumDeposit)

		case <-watcher.RemoveChannel():
			log.Warn("configuration file removed, reload disabled")
			return
		}
	}
}
