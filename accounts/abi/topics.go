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
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// FilterTopics converts filter values for the indexed inputs of the event into
// a topic filter. Each rule lists the accepted values of one indexed input, in
// declaration order; an empty rule matches anything. Named events get their ID
// as first topic.
// FilterTopics 将事件索引参数的过滤值转换为主题过滤器。每条规则按声明顺序列出一个索引参数可接受的值；
// 空规则匹配任意值。非匿名事件的第一个主题是其 ID。
func (e *Event) FilterTopics(query ...[]interface{}) ([][]common.Hash, error) {
	var indexed Arguments
	for _, input := range e.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(query) > len(indexed) {
		return nil, arityErr("topic rules", len(query), len(indexed))
	}
	var topics [][]common.Hash
	if !e.Anonymous {
		topics = append(topics, []common.Hash{e.ID})
	}
	for i, rule := range query {
		var alternatives []common.Hash
		for _, v := range rule {
			topic, err := packTopic(indexed[i].Type, v)
			if err != nil {
				return nil, fmt.Errorf("topic %s: %w", indexed[i].Name, err)
			}
			alternatives = append(alternatives, topic)
		}
		topics = append(topics, alternatives)
	}
	return topics, nil
}

// packTopic encodes one indexed value the way the EVM stores it in a log:
// static values as their word, everything else as the hash of its encoding.
// packTopic 按 EVM 在日志中存储的方式编码一个索引值：静态值为其编码字，其他值为其编码的哈希。
func packTopic(t Type, v interface{}) (common.Hash, error) {
	if h, ok := v.(common.Hash); ok && (t.IsDynamic() || t.T == ArrayTy) {
		return h, nil
	}
	switch t.T {
	case StringTy:
		s, ok := v.(string)
		if !ok {
			return common.Hash{}, typeErr(t, reflect.TypeOf(v))
		}
		return crypto.Keccak256Hash([]byte(s)), nil
	case BytesTy:
		b, err := toBytes(v)
		if err != nil {
			return common.Hash{}, err
		}
		return crypto.Keccak256Hash(b), nil
	}
	packed, err := t.pack(v)
	if err != nil {
		return common.Hash{}, err
	}
	switch t.T {
	case SliceTy:
		return crypto.Keccak256Hash(packed[wordSize:]), nil
	case ArrayTy:
		return crypto.Keccak256Hash(packed), nil
	}
	return common.BytesToHash(packed), nil
}
