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
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/fsnotify/fsnotify"
	"github.com/irchain/go-irc/accounts/abi"
	"github.com/urfave/cli/v2"
)

var watchCommand = &cli.Command{
	Action:    watchLogs,
	Name:      "watch",
	Usage:     "Decode log JSON lines from stdin, reloading contract interfaces on change",
	ArgsUsage: " ",
	Description: `Every contract of --config is registered and its interface file watched.
When a file changes the contract is registered again, so later logs decode
with the new interface. Each input line is one {address, topics, data} log.`,
}

// maxLogLine bounds a single log line read from the input.
const maxLogLine = 4 * 1024 * 1024

// contractWatcher registers configured contract interfaces again whenever their
// files are written or replaced.
// contractWatcher 在配置的合约接口文件被写入或替换时重新注册这些接口。
type contractWatcher struct {
	reg       *abi.Registry
	contracts map[string]ContractConfig // 接口文件路径 -> 合约
	watcher   *fsnotify.Watcher
	quit      chan struct{}
	done      chan struct{}
}

// newContractWatcher starts watching the directories holding the interface
// files. Directories rather than files are watched so that editors replacing a
// file through a rename are still noticed.
// newContractWatcher 开始监视接口文件所在的目录。监视目录而不是文件，这样编辑器通过重命名替换文件时也能被察觉。
func newContractWatcher(reg *abi.Registry, contracts []ContractConfig) (*contractWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	cw := &contractWatcher{
		reg:       reg,
		contracts: make(map[string]ContractConfig, len(contracts)),
		watcher:   watcher,
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	dirs := make(map[string]struct{})
	for _, c := range contracts {
		path := filepath.Clean(c.ABI)
		cw.contracts[path] = c
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
		log.Debug("Watching contract interfaces", "dir", dir)
	}
	go cw.loop()
	return cw, nil
}

func (cw *contractWatcher) loop() {
	defer close(cw.done)
	for {
		select {
		case <-cw.quit:
			return
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if c, ok := cw.contracts[filepath.Clean(ev.Name)]; ok {
				cw.reload(c)
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("Contract interface watcher failed", "err", err)
		}
	}
}

// reload parses the interface file again. A file that does not parse, e.g. one
// caught halfway through a write, leaves the registered interface in place.
// reload 重新解析接口文件。无法解析的文件（例如写到一半时）不会替换已注册的接口。
func (cw *contractWatcher) reload(c ContractConfig) {
	parsed, err := readABI(c.ABI)
	if err != nil {
		log.Warn("Failed to reload contract interface", "name", c.Name, "file", c.ABI, "err", err)
		return
	}
	if err := cw.reg.Register(c.Name, c.Address, parsed); err != nil {
		log.Warn("Failed to register contract interface", "name", c.Name, "err", err)
	}
}

// Close stops the watcher and waits for its loop to exit.
func (cw *contractWatcher) Close() error {
	close(cw.quit)
	err := cw.watcher.Close()
	<-cw.done
	return err
}

// watchLogs is the watch command.
// watchLogs 是 watch 命令：逐行解码标准输入中的日志，并在接口文件变化时重新加载。
func watchLogs(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	if len(cfg.Contracts) == 0 {
		return errors.New("watch needs a --config with contracts")
	}
	reg, err := makeRegistry(cfg)
	if err != nil {
		return err
	}
	watcher, err := newContractWatcher(reg, cfg.Contracts)
	if err != nil {
		return err
	}
	defer watcher.Close()

	scanner := bufio.NewScanner(ctx.App.Reader)
	scanner.Buffer(make([]byte, 64*1024), maxLogLine)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		record, err := decodeLogJSON(reg, line)
		if err != nil {
			log.Warn("Skipping undecodable log", "err", err)
			continue
		}
		if err := printJSON(ctx, record); err != nil {
			return err
		}
	}
	return scanner.Err()
}
