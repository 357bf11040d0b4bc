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
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Event is an event potentially triggered by the EVM's LOG mechanism. The Event
// holds type information (inputs) about the yielded output. Anonymous events
// don't get the signature canonical representation as the first LOG topic.
// Event 是一个可能由 EVM 的 LOG 机制触发的事件。Event
// 保存有关产生输出的类型信息（输入）。匿名事件
// 不会将签名的规范表示形式作为第一个 LOG 主题。
type Event struct {
	// Name is the event name used for internal representation. It's derived from
	// the raw name and a suffix will be added in the case of event overloading.
	// Name 是用于内部表示的事件名称。它源自原始名称，在事件重载的情况下会添加后缀。
	Name string

	// RawName is the raw event name parsed from ABI.
	// RawName 是从 ABI 解析的原始事件名称。
	RawName string
	// Anonymous 指示事件是否是匿名的。
	Anonymous bool
	// Inputs 是事件的参数列表。
	Inputs Arguments
	// str 是事件的缓存字符串表示形式。
	str string

	// Sig contains the string signature in canonical form.
	// e.g.	 event foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	// Sig 包含规范形式的字符串签名。
	// 请注意，"int" 会被替换为其规范表示 "int256"。
	Sig string

	// ID returns the canonical representation of the event's signature used by the
	// abi definition to identify event names and types.
	// ID 是事件签名的 Keccak256 哈希值，即第一个日志主题。
	ID common.Hash
}

// NewEvent creates a new Event.
// It sanitizes the input arguments to remove unnamed arguments.
// It also precomputes the id, signature and string representation
// of the event.
// NewEvent 创建一个新的 Event 对象。
// 它会为未命名的参数生成名称，并预先计算事件的 id、签名和字符串表示形式。
func NewEvent(name, rawName string, anonymous bool, inputs Arguments) Event {
	named := make(Arguments, len(inputs))
	for i, input := range inputs {
		named[i] = input
		if input.Name == "" {
			// 如果参数没有名称，则为其生成一个默认名称，例如 arg0, arg1, ...
			named[i].Name = fmt.Sprintf("arg%d", i)
		}
	}
	sig := signature(rawName, named)
	return Event{
		Name:      name,
		RawName:   rawName,
		Anonymous: anonymous,
		Inputs:    named,
		str:       fmt.Sprintf("event %v(%v)", rawName, describe(named)),
		Sig:       sig,
		ID:        crypto.Keccak256Hash([]byte(sig)),
	}
}

// String returns the string representation of the event.
// String 返回事件的字符串表示形式。
func (e Event) String() string {
	return e.str
}

// EventRecord is a decoded log entry: the event name as declared in the
// interface (overloads are not suffixed) and its fields in declaration order.
// EventRecord 是解码后的日志条目：接口中声明的事件名称（重载不加后缀）及按声明顺序排列的字段。
type EventRecord struct {
	Name   string     `json:"event"`
	Fields Values     `json:"fields"`
	Log    *types.Log `json:"-"` // 原始日志，仅由 DecodeLogItem 设置
}

// Get returns the field called name.
func (r *EventRecord) Get(name string) (interface{}, bool) {
	return r.Fields.Get(name)
}

// Decode decodes an event from its log data and topics. Non-indexed inputs are
// read from data, each indexed input from its own topic. Topics of named events
// start with the event ID, so their indexed inputs begin at topic 1. Indexed
// inputs of dynamic or array type only keep the hash of their value, which is
// returned as is.
// Decode 从日志数据和主题中解码事件。非索引参数从 data 读取，每个索引参数从各自的主题读取。
// 非匿名事件的第一个主题是事件 ID，因此其索引参数从第 1 个主题开始。
// 动态类型或数组类型的索引参数只保留其值的哈希，原样返回。
func (e *Event) Decode(data []byte, topics []common.Hash) (*EventRecord, error) {
	values, err := e.Inputs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", e.Name, err)
	}
	topicOffset := 1
	if e.Anonymous {
		topicOffset = 0
	}
	var (
		fields  = make(Values, 0, len(e.Inputs))
		next    = 0
		indexed = 0
	)
	for _, input := range e.Inputs {
		if !input.Indexed {
			fields = append(fields, values[next])
			next++
			continue
		}
		slot := topicOffset + indexed
		indexed++
		if slot >= len(topics) {
			return nil, fmt.Errorf("event %s: %w", e.Name, layoutErr("missing topic %d for indexed input %s", slot, input.Name))
		}
		value, err := unpackTopic(input.Type, topics[slot])
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", e.Name, err)
		}
		fields = append(fields, Value{Name: input.Name, Type: input.Type.String(), Value: value})
	}
	return &EventRecord{Name: e.RawName, Fields: fields}, nil
}

// DecodeLogItem decodes log if its first topic is the event ID. A log emitted by
// some other event yields nil without error. Anonymous events carry no ID topic
// and therefore never match.
// DecodeLogItem 仅当日志的第一个主题等于事件 ID 时才解码该日志。其他事件产生的日志返回 nil 且不报错。
// 匿名事件没有 ID 主题，因此永远不会匹配。
func (e *Event) DecodeLogItem(log *types.Log) (*EventRecord, error) {
	if e.Anonymous || log == nil || len(log.Topics) == 0 || log.Topics[0] != e.ID {
		return nil, nil
	}
	record, err := e.Decode(log.Data, log.Topics)
	if err != nil {
		return nil, err
	}
	record.Log = log
	return record, nil
}

// unpackTopic decodes one indexed input from its topic word.
func unpackTopic(t Type, topic common.Hash) (interface{}, error) {
	if t.IsDynamic() || t.T == ArrayTy {
		return topic, nil
	}
	value, _, err := t.unpack(topic[:], 0)
	return value, err
}
