// Copyright 2024 The Wikiabstract Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package reportlog sets up the structured logger used around an
// extraction run, the same development/production zap switch the
// teacher's CLI entry point uses.
package reportlog

import "go.uber.org/zap"

// New builds a *zap.SugaredLogger. debug selects zap's human-readable
// development config (console output, caller-annotated, debug level);
// otherwise the production JSON config is used. The caller is
// responsible for calling the returned sync function before exit.
func New(debug bool) (*zap.SugaredLogger, func() error, error) {
	var z *zap.Logger
	var err error

	if debug {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, err
	}

	return z.Sugar(), z.Sync, nil
}
