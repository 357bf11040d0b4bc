// Copyright 2025 The go-irc Authors
// This file is part of the go-irc library.
//
// The go-irc library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-irc library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-irc library. If not, see <http://www.gnu.org/licenses/>.

// 版权所有 2025 The go-irc Authors
// 此文件是 go-irc 库的一部分。
//
// go-irc 库是免费软件：您可以根据自由软件基金会发布的 GNU 宽通用公共许可证的条款重新分发和/或修改它，
// 可以是许可证的第 3 版，也可以是（由您选择）任何更高版本。
//
// go-irc 库的发布是希望它能有用，但没有任何保证；甚至没有对适销性或特定用途适用性的默示保证。
// 有关更多详细信息，请参阅 GNU 宽通用公共许可证。
//
// 您应该已经随 go-irc 库收到一份 GNU 宽通用公共许可证的副本。如果没有，请参阅 <http://www.gnu.org/licenses/>。

package abi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// The ABI holds information about a contract's context and available
// invokable methods. It will allow you to type check function calls and
// packs data accordingly.
// ABI 保存合约上下文以及可调用方法的信息，用于对函数调用进行类型检查并相应地打包数据。
type ABI struct {
	Constructor Method
	Methods     map[string]Method
	Events      map[string]Event

	// Selector tables, built once when the ABI is loaded and read-only afterwards.
	// 选择器表，在加载 ABI 时构建一次，之后只读。
	methodsByID map[[4]byte]*Method
	eventsByID  map[common.Hash]*Event
}

// JSON returns a parsed ABI interface and error if it failed.
// JSON 解析 ABI 接口定义，失败时返回错误。
func JSON(reader io.Reader) (ABI, error) {
	dec := json.NewDecoder(reader)

	var abi ABI
	if err := dec.Decode(&abi); err != nil {
		return ABI{}, err
	}
	return abi, nil
}

// MustJSON is like JSON but panics on error.
func MustJSON(def string) ABI {
	parsed, err := JSON(bytes.NewReader([]byte(def)))
	if err != nil {
		panic(err)
	}
	return parsed
}

// entryMarshaling is one entry of the JSON interface. Only name, type,
// inputs, outputs, constant, anonymous and stateMutability are consumed.
type entryMarshaling struct {
	Type            string
	Name            string
	Inputs          []Argument
	Outputs         []Argument
	Constant        bool
	StateMutability string
	Anonymous       bool
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 实现了 json.Unmarshaler 接口。
func (abi *ABI) UnmarshalJSON(data []byte) error {
	var fields []entryMarshaling
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	abi.Methods = make(map[string]Method)
	abi.Events = make(map[string]Event)
	for _, field := range fields {
		switch field.Type {
		case "constructor":
			abi.Constructor = NewMethod("", "", Constructor, false, field.Inputs, nil)
		case "function", "":
			// 缺省类型为 function。view 和 pure 函数视为常量。
			constant := field.Constant || field.StateMutability == "view" || field.StateMutability == "pure"
			name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Methods[s]; return ok })
			abi.Methods[name] = NewMethod(name, field.Name, Function, constant, field.Inputs, field.Outputs)
		case "event":
			name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Events[s]; return ok })
			abi.Events[name] = NewEvent(name, field.Name, field.Anonymous, field.Inputs)
		default:
			// fallback、receive 和 error 条目不参与编解码。
			continue
		}
	}
	abi.index()
	return nil
}

// index builds the selector tables. Duplicate selectors keep the first method.
func (abi *ABI) index() {
	abi.methodsByID = make(map[[4]byte]*Method, len(abi.Methods))
	for name := range abi.Methods {
		method := abi.Methods[name]
		if prev, ok := abi.methodsByID[method.ID]; ok && prev.Name < method.Name {
			continue
		}
		abi.methodsByID[method.ID] = &method
	}
	abi.eventsByID = make(map[common.Hash]*Event, len(abi.Events))
	for name := range abi.Events {
		event := abi.Events[name]
		if event.Anonymous {
			continue
		}
		if prev, ok := abi.eventsByID[event.ID]; ok && prev.Name < event.Name {
			continue
		}
		abi.eventsByID[event.ID] = &event
	}
}

// Pack the given method name to conform the ABI. Method call's data
// will consist of method_id, args0, arg1, ... argN. Method id consists
// of 4 bytes and arguments are all 32 bytes.
// Method ids are created from the first 4 bytes of the hash of the
// methods string signature. (signature = baz(uint32,string32))
// Pack 按 ABI 打包给定的方法调用。调用数据由方法 id 和各参数组成，
// 方法 id 是方法签名哈希的前 4 个字节。
// 方法名为空时打包构造函数参数。
func (abi *ABI) Pack(name string, args ...interface{}) ([]byte, error) {
	if name == "" {
		return abi.Constructor.Inputs.Pack(args...)
	}
	method, exist := abi.Methods[name]
	if !exist {
		return nil, fmt.Errorf("%w: method '%s' not found", ErrUnknownSelector, name)
	}
	arguments, err := method.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("method '%s': %w", name, err)
	}
	return append(method.ID[:], arguments...), nil
}

// PackConstructor returns the deployment payload: the contract bytecode followed
// by the encoded constructor arguments.
// PackConstructor 返回部署数据：合约字节码后跟编码后的构造函数参数。
func (abi *ABI) PackConstructor(bytecode []byte, args ...interface{}) ([]byte, error) {
	arguments, err := abi.Constructor.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("constructor: %w", err)
	}
	return append(common.CopyBytes(bytecode), arguments...), nil
}

// Unpack decodes the return data of the method called name.
// Unpack 解码名为 name 的方法的返回数据。
func (abi *ABI) Unpack(name string, data []byte) (Values, error) {
	method, exist := abi.Methods[name]
	if !exist {
		return nil, fmt.Errorf("%w: method '%s' not found", ErrUnknownSelector, name)
	}
	return method.Outputs.Unpack(data)
}

// MethodByID looks up a method by the 4-byte id,
// returns nil if none found.
// MethodByID 通过 4 字节的 id 查找方法，未找到时返回 nil。
func (abi *ABI) MethodByID(sigdata []byte) (*Method, error) {
	if len(sigdata) < 4 {
		return nil, layoutErr("data too short (%d bytes) for abi method lookup", len(sigdata))
	}
	var id [4]byte
	copy(id[:], sigdata[:4])
	if method, ok := abi.methodsByID[id]; ok {
		return method, nil
	}
	return nil, fmt.Errorf("%w: no method with id %#x", ErrUnknownSelector, sigdata[:4])
}

// EventByID looks an event up by its topic hash in the
// ABI and returns nil if none found.
// EventByID 通过主题哈希查找事件。
func (abi *ABI) EventByID(topic common.Hash) (*Event, error) {
	if event, ok := abi.eventsByID[topic]; ok {
		return event, nil
	}
	return nil, fmt.Errorf("%w: no event with id %s", ErrUnknownSelector, topic.Hex())
}

// MethodCall is decoded call data.
// MethodCall 是解码后的调用数据。
type MethodCall struct {
	Method *Method `json:"-"`
	Name   string  `json:"name"`
	Params Values  `json:"params"`
}

// DecodeMethod dispatches call data on its leading selector and decodes the
// remainder with the inputs of the matched method.
// DecodeMethod 根据调用数据开头的选择器进行分发，并用匹配方法的输入参数解码剩余数据。
func (abi *ABI) DecodeMethod(data []byte) (*MethodCall, error) {
	method, err := abi.MethodByID(data)
	if err != nil {
		return nil, err
	}
	params, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("method '%s': %w", method.Name, err)
	}
	return &MethodCall{Method: method, Name: method.Name, Params: params}, nil
}

// DecodeLog decodes a log emitted by one of the events of the ABI, looked up by
// its first topic.
// DecodeLog 解码由 ABI 中某个事件产生的日志，通过其第一个主题查找事件。
func (abi *ABI) DecodeLog(log *types.Log) (*EventRecord, error) {
	if log == nil || len(log.Topics) == 0 {
		return nil, fmt.Errorf("%w: log without topics", ErrUnknownSelector)
	}
	event, err := abi.EventByID(log.Topics[0])
	if err != nil {
		return nil, err
	}
	return event.DecodeLogItem(log)
}

// DecodeLogs decodes every log emitted by a known event, skipping the others.
// A known log that fails to decode aborts the whole call.
// DecodeLogs 解码所有由已知事件产生的日志，跳过其他日志。已知日志解码失败会中止整个调用。
func (abi *ABI) DecodeLogs(logs []types.Log) ([]*EventRecord, error) {
	var records []*EventRecord
	for i := range logs {
		record, err := abi.DecodeLog(&logs[i])
		if err != nil {
			if errors.Is(err, ErrUnknownSelector) {
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
