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
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/irchain/go-irc/accounts/abi"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
)

var dumpConfigCommand = &cli.Command{
	Action:    dumpConfig,
	Name:      "dumpconfig",
	Usage:     "Export configuration values in a TOML format",
	ArgsUsage: "<dumpfile (optional)>",
	Flags:     []cli.Flag{endpointFlag},
	Description: `Export configuration values in TOML format (to stdout by default).
The exported file can be passed back with --config.`,
}

// These settings ensure that TOML keys use the same names as Go struct fields.
// 这些设置确保 TOML 键使用与 Go 结构体字段相同的名称。
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// NodeConfig is the node the call command talks to.
type NodeConfig struct {
	Endpoint string
}

// ContractConfig names a contract interface and where it is deployed.
// ContractConfig 指定一个合约接口及其部署地址。
type ContractConfig struct {
	Name    string
	ABI     string         // 接口 JSON 文件路径，相对路径基于配置文件所在目录
	Address common.Address `toml:",omitempty"`
}

type codecConfig struct {
	Node      NodeConfig
	Contracts []ContractConfig `toml:",omitempty"`
}

func defaultConfig() codecConfig {
	return codecConfig{Node: NodeConfig{Endpoint: "http://127.0.0.1:8545"}}
}

// loadConfig decodes file into cfg. Relative interface paths are resolved
// against the directory of file.
// loadConfig 将 file 解码到 cfg 中。相对的接口路径基于 file 所在的目录解析。
func loadConfig(file string, cfg *codecConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	// 为带有行号的错误添加文件名。
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	if err != nil {
		return err
	}
	dir := filepath.Dir(file)
	for i := range cfg.Contracts {
		if cfg.Contracts[i].ABI != "" && !filepath.IsAbs(cfg.Contracts[i].ABI) {
			cfg.Contracts[i].ABI = filepath.Join(dir, cfg.Contracts[i].ABI)
		}
	}
	return nil
}

// makeConfig loads the configuration file if one is given and applies flags.
// makeConfig 加载配置文件（如果指定）并应用命令行标志。
func makeConfig(ctx *cli.Context) (codecConfig, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(endpointFlag.Name) {
		cfg.Node.Endpoint = ctx.String(endpointFlag.Name)
	}
	return cfg, nil
}

// makeRegistry registers every configured contract interface.
// makeRegistry 注册所有已配置的合约接口。
func makeRegistry(cfg codecConfig) (*abi.Registry, error) {
	reg := abi.NewRegistry()
	for _, c := range cfg.Contracts {
		parsed, err := readABI(c.ABI)
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", c.Name, err)
		}
		if err := reg.Register(c.Name, c.Address, parsed); err != nil {
			return nil, err
		}
	}
	log.Debug("Loaded contract registry", "contracts", len(cfg.Contracts))
	return reg, nil
}

// readABI parses an interface JSON file.
func readABI(path string) (*abi.ABI, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	parsed, err := abi.JSON(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &parsed, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}
