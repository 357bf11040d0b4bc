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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	"github.com/irchain/go-irc/accounts/abi"
	"github.com/irchain/go-irc/accounts/abi/bind"
	"github.com/irchain/go-irc/rpc/ircclient"
	"github.com/urfave/cli/v2"
)

var (
	selectorsCommand = &cli.Command{
		Action:    printSelectors,
		Name:      "selectors",
		Usage:     "Print the method selectors and event topics of an interface",
		ArgsUsage: " ",
		Flags:     []cli.Flag{abiFlag},
	}
	encodeCommand = &cli.Command{
		Action:    encode,
		Name:      "encode",
		Usage:     "Encode call data or bare parameters",
		ArgsUsage: "[METHOD] ARGS...",
		Flags:     []cli.Flag{abiFlag, typesFlag},
		Description: `With --abi the first argument names the method and the result is prefixed
with its selector. With --types the arguments are encoded as a bare parameter list.
Arguments are JSON values; anything that is not valid JSON is taken as a string.`,
	}
	decodeCommand = &cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "Decode call data or bare parameters",
		ArgsUsage: "HEXDATA",
		Flags:     []cli.Flag{abiFlag, typesFlag},
		Description: `With --abi (or the contracts of --config) the call data is dispatched on its
selector. With --types the data is decoded as a bare parameter list.`,
	}
	decodeLogCommand = &cli.Command{
		Action:    decodeLog,
		Name:      "decode-log",
		Usage:     "Decode a log entry given as JSON {address, topics, data}",
		ArgsUsage: "LOGJSON",
		Flags:     []cli.Flag{abiFlag},
	}
	callCommand = &cli.Command{
		Action:    call,
		Name:      "call",
		Usage:     "Call a constant contract method and decode the result",
		ArgsUsage: "METHOD ARGS...",
		Flags:     []cli.Flag{abiFlag, endpointFlag, addressFlag, blockFlag},
	}
)

func printSelectors(ctx *cli.Context) error {
	parsed, err := readABI(ctx.String(abiFlag.Name))
	if err != nil {
		return err
	}
	var lines []string
	for _, m := range parsed.Methods {
		lines = append(lines, fmt.Sprintf("%s function %s", m.Selector(), m.Sig))
	}
	sort.Strings(lines)
	var events []string
	for _, ev := range parsed.Events {
		kind := "event"
		if ev.Anonymous {
			kind = "anonymous event"
		}
		events = append(events, fmt.Sprintf("%s %s %s", ev.ID.Hex(), kind, ev.Sig))
	}
	sort.Strings(events)
	for _, line := range append(lines, events...) {
		fmt.Fprintln(ctx.App.Writer, line)
	}
	return nil
}

func encode(ctx *cli.Context) error {
	var (
		args  = ctx.Args().Slice()
		data  []byte
		types = ctx.String(typesFlag.Name)
	)
	switch {
	case ctx.IsSet(abiFlag.Name):
		if len(args) == 0 {
			return errors.New("method name required")
		}
		parsed, err := readABI(ctx.String(abiFlag.Name))
		if err != nil {
			return err
		}
		method, ok := parsed.Methods[args[0]]
		if !ok && args[0] != "constructor" {
			return fmt.Errorf("%w: method '%s' not found", abi.ErrUnknownSelector, args[0])
		}
		if args[0] == "constructor" {
			data, err = parsed.Pack("", parseArgs(parsed.Constructor.Inputs, args[1:])...)
		} else {
			data, err = parsed.Pack(method.Name, parseArgs(method.Inputs, args[1:])...)
		}
		if err != nil {
			return err
		}
	case types != "":
		schema, err := abi.NewArguments(nil, splitTypes(types))
		if err != nil {
			return err
		}
		if data, err = schema.Pack(parseArgs(schema, args)...); err != nil {
			return err
		}
	default:
		return errors.New("either --abi or --types is required")
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(data))
	return nil
}

func decode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("exactly one hex argument required")
	}
	data, err := hexutil.Decode(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("%w: %v", abi.ErrInvalidHex, err)
	}
	if types := ctx.String(typesFlag.Name); types != "" {
		values, err := abi.DecodeParams(splitTypes(types), data)
		if err != nil {
			return err
		}
		return printJSON(ctx, values)
	}
	dispatcher, err := makeDispatcher(ctx)
	if err != nil {
		return err
	}
	call, err := dispatcher.DecodeMethod(data)
	if err != nil {
		return err
	}
	return printJSON(ctx, call)
}

// logArg is the JSON form of a log accepted on the command line.
type logArg struct {
	Address common.Address `json:"address"`
	Topics  []common.Hash  `json:"topics"`
	Data    hexutil.Bytes  `json:"data"`
}

func decodeLog(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("exactly one log JSON argument required")
	}
	dispatcher, err := makeDispatcher(ctx)
	if err != nil {
		return err
	}
	record, err := decodeLogJSON(dispatcher, ctx.Args().First())
	if err != nil {
		return err
	}
	return printJSON(ctx, record)
}

// decodeLogJSON decodes a log given in its command line JSON form.
func decodeLogJSON(d dispatcher, input string) (*abi.EventRecord, error) {
	var arg logArg
	if err := json.Unmarshal([]byte(input), &arg); err != nil {
		return nil, fmt.Errorf("invalid log: %w", err)
	}
	record, err := d.DecodeLog(&types.Log{Address: arg.Address, Topics: arg.Topics, Data: arg.Data})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: log does not match its event", abi.ErrUnknownSelector)
	}
	return record, nil
}

func call(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("method name required")
	}
	if !common.IsHexAddress(ctx.String(addressFlag.Name)) {
		return fmt.Errorf("%w: invalid contract address %q", abi.ErrInvalidHex, ctx.String(addressFlag.Name))
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	parsed, err := readABI(ctx.String(abiFlag.Name))
	if err != nil {
		return err
	}
	method, ok := parsed.Methods[ctx.Args().First()]
	if !ok {
		return fmt.Errorf("%w: method '%s' not found", abi.ErrUnknownSelector, ctx.Args().First())
	}
	timeout, cancel := context.WithTimeout(ctx.Context, 30*time.Second)
	defer cancel()

	client, err := ircclient.DialContext(timeout, cfg.Node.Endpoint)
	if err != nil {
		return err
	}
	defer client.Close()

	opts := &bind.CallOpts{Context: timeout}
	if block := ctx.Int64(blockFlag.Name); block >= 0 {
		opts.BlockNumber = big.NewInt(block)
	}
	contract := bind.NewContract(common.HexToAddress(ctx.String(addressFlag.Name)), *parsed, client)
	log.Debug("Calling contract", "endpoint", cfg.Node.Endpoint, "address", contract.Address(), "method", method.Sig)
	values, err := contract.Call(opts, method.Name, parseArgs(method.Inputs, ctx.Args().Tail())...)
	if err != nil {
		return err
	}
	return printJSON(ctx, values)
}

// dispatcher is what decode and decode-log need from an ABI or a registry.
type dispatcher interface {
	DecodeMethod(data []byte) (*abi.MethodCall, error)
	DecodeLog(log *types.Log) (*abi.EventRecord, error)
}

// makeDispatcher uses the --abi interface if given, otherwise a registry of
// every configured contract.
// makeDispatcher 如果指定了 --abi 则使用该接口，否则使用由所有已配置合约组成的注册表。
func makeDispatcher(ctx *cli.Context) (dispatcher, error) {
	if path := ctx.String(abiFlag.Name); path != "" {
		return readABI(path)
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return nil, err
	}
	if len(cfg.Contracts) == 0 {
		return nil, errors.New("either --abi or a --config with contracts is required")
	}
	return makeRegistry(cfg)
}

// parseArgs converts command line arguments into codec values. Parameters of
// type string take the argument verbatim unless it is a quoted JSON string;
// the others are parsed as JSON and fall back to the raw text.
// parseArgs 将命令行参数转换为编解码器的值。string 类型的参数除非是带引号的 JSON 字符串，否则按原样使用；
// 其他参数按 JSON 解析，解析失败时退回原始文本。
func parseArgs(schema abi.Arguments, args []string) []interface{} {
	values := make([]interface{}, len(args))
	for i, arg := range args {
		if i < len(schema) && schema[i].Type.T == abi.StringTy {
			var s string
			if err := json.Unmarshal([]byte(arg), &s); err == nil {
				values[i] = s
			} else {
				values[i] = arg
			}
			continue
		}
		values[i] = parseJSONArg(arg)
	}
	return values
}

func parseJSONArg(arg string) interface{} {
	dec := json.NewDecoder(strings.NewReader(arg))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil || dec.More() {
		return arg
	}
	return v
}

func splitTypes(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func printJSON(ctx *cli.Context, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}
