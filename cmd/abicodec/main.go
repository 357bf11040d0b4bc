// Copyright 2025 The go-irc Authors
// This file is part of go-irc.
//
// go-irc is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-irc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-irc. If not, see <http://www.gnu.org/licenses/>.

// 版权所有 2025 The go-irc Authors
// 此文件是 go-irc 的一部分。
//
// go-irc 是免费软件：您可以根据自由软件基金会发布的 GNU 通用公共许可证的条款重新分发和/或修改它，
// 可以是许可证的第 3 版，也可以是（由您选择）任何更高版本。
//
// go-irc 的发布是希望它能有用，但没有任何保证；甚至没有对适销性或特定用途适用性的默示保证。
// 有关更多详细信息，请参阅 GNU 通用公共许可证。
//
// 您应该已经随 go-irc 收到一份 GNU 通用公共许可证的副本。如果没有，请参阅 <http://www.gnu.org/licenses/>。

// abicodec is a command line tool to encode and decode contract calls and logs.
// abicodec 是一个用于编码和解码合约调用及日志的命令行工具。
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var (
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 2,
	}
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	abiFlag = &cli.StringFlag{
		Name:  "abi",
		Usage: "Path to the contract interface JSON",
	}
	typesFlag = &cli.StringFlag{
		Name:  "types",
		Usage: "Comma separated parameter types, used instead of --abi",
	}
	endpointFlag = &cli.StringFlag{
		Name:  "endpoint",
		Usage: "Node RPC endpoint",
	}
	addressFlag = &cli.StringFlag{
		Name:  "address",
		Usage: "Contract address",
	}
	blockFlag = &cli.Int64Flag{
		Name:  "block",
		Usage: "Block number to call at (default latest)",
		Value: -1,
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "abicodec",
		Usage: "contract ABI encoder and decoder",
		Flags: []cli.Flag{verbosityFlag, configFileFlag},
		Before: func(ctx *cli.Context) error {
			setupLogging(ctx.App.ErrWriter, ctx.Int(verbosityFlag.Name))
			return nil
		},
		Commands: []*cli.Command{
			selectorsCommand,
			encodeCommand,
			decodeCommand,
			decodeLogCommand,
			callCommand,
			bindgenCommand,
			watchCommand,
			dumpConfigCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging installs a terminal handler on w, colored when w is a terminal.
// setupLogging 在 w 上安装终端日志处理器，当 w 是终端时启用颜色。
func setupLogging(w io.Writer, verbosity int) {
	if w == nil {
		w = os.Stderr
	}
	usecolor := false
	if f, ok := w.(*os.File); ok {
		usecolor = (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) && os.Getenv("TERM") != "dumb"
		if usecolor {
			w = colorable.NewColorable(f)
		}
	}
	handler := log.NewTerminalHandlerWithLevel(w, log.FromLegacyLevel(verbosity), usecolor)
	log.SetDefault(log.NewLogger(handler))
}
