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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/irchain/go-irc/accounts/abi/abigen"
	"github.com/urfave/cli/v2"
)

var (
	typeFlag = &cli.StringFlag{
		Name:  "type",
		Usage: "Struct name for the binding (default = ABI file name)",
	}
	pkgFlag = &cli.StringFlag{
		Name:  "pkg",
		Usage: "Package name to generate the binding into",
		Value: "main",
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "Output file for the generated binding (default = stdout)",
	}

	bindgenCommand = &cli.Command{
		Action:    bindgen,
		Name:      "bindgen",
		Usage:     "Generate a Go binding for a contract interface",
		ArgsUsage: " ",
		Flags:     []cli.Flag{abiFlag, typeFlag, pkgFlag, outFlag},
	}
)

// bindgen is the bindgen command.
// bindgen 命令：根据 ABI 文件生成 Go 绑定代码。
func bindgen(ctx *cli.Context) error {
	path := ctx.String(abiFlag.Name)
	if path == "" {
		return fmt.Errorf("missing --%s", abiFlag.Name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	typ := ctx.String(typeFlag.Name)
	if typ == "" {
		typ = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	code, err := abigen.Bind(typ, string(data), ctx.String(pkgFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to generate binding: %w", err)
	}
	out := ctx.String(outFlag.Name)
	if out == "" {
		fmt.Fprint(ctx.App.Writer, code)
		return nil
	}
	if err := os.WriteFile(out, []byte(code), 0600); err != nil {
		return fmt.Errorf("failed to write binding: %w", err)
	}
	log.Info("Wrote contract binding", "type", typ, "file", out)
	return nil
}
