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
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"
)

// RegistryEventType specifies the different event types that can be fired by
// the registry.
// RegistryEventType 指定注册表可以触发的不同事件类型。
type RegistryEventType int

const (
	// ContractRegistered is fired when an interface is added or replaced.
	// ContractRegistered 在接口被添加或替换时触发。
	ContractRegistered RegistryEventType = iota

	// ContractUnregistered is fired when an interface is removed.
	// ContractUnregistered 在接口被移除时触发。
	ContractUnregistered
)

// RegistryEvent is an event fired by the registry on a table change.
// RegistryEvent 是注册表在表变更时触发的事件。
type RegistryEvent struct {
	Name string
	Kind RegistryEventType
}

// Entry is one registered contract interface.
// Entry 是一个已注册的合约接口。
type Entry struct {
	Name    string
	Address common.Address // 零地址表示不绑定具体合约
	ABI     *ABI

	seq uint64 // 注册顺序，选择器冲突时先注册者优先
}

// registryTable is an immutable snapshot of all registered interfaces.
type registryTable struct {
	entries   map[string]*Entry
	addresses map[common.Address]*Entry
	methods   map[[4]byte]*Method
	events    map[common.Hash]*Event
}

// Registry aggregates the selector tables of many contract interfaces.
// Lookups read an immutable snapshot without locking; every change builds a
// fresh table and swaps it in.
// Registry 聚合多个合约接口的选择器表。
// 查找操作读取不可变快照，无需加锁；每次变更都会构建新表并原子地替换。
type Registry struct {
	mu    sync.Mutex // 串行化写操作
	seq   uint64
	table atomic.Pointer[registryTable]
	feed  event.Feed
}

// NewRegistry returns an empty registry.
// NewRegistry 返回一个空的注册表。
func NewRegistry() *Registry {
	r := new(Registry)
	r.table.Store(buildTable(nil))
	return r
}

// Register adds the interface under name, replacing any previous one with the
// same name. When two interfaces share a selector or topic, the earlier
// registration keeps it; a replacement inherits the position of the interface
// it replaces.
// Register 以 name 注册接口，替换同名的旧接口。当两个接口共享选择器或主题时，先注册者保留；
// 替换者继承被替换接口的注册位置。
func (r *Registry) Register(name string, address common.Address, abi *ABI) error {
	if name == "" {
		return fmt.Errorf("%w: empty contract name", ErrInvalidValue)
	}
	if abi == nil {
		return fmt.Errorf("%w: nil interface for %s", ErrInvalidValue, name)
	}
	r.mu.Lock()
	old := r.table.Load()
	entries := make([]*Entry, 0, len(old.entries)+1)
	for _, e := range old.entries {
		if e.Name != name {
			entries = append(entries, e)
		}
	}
	// A replaced interface keeps its place in the registration order.
	// 被替换的接口保留其原有的注册顺序。
	var seq uint64
	if replaced, ok := old.entries[name]; ok {
		seq = replaced.seq
	} else {
		r.seq++
		seq = r.seq
	}
	entries = append(entries, &Entry{Name: name, Address: address, ABI: abi, seq: seq})
	next := buildTable(entries)
	r.table.Store(next)
	r.mu.Unlock()

	log.Info("Registered contract interface", "name", name, "address", address, "methods", len(abi.Methods), "events", len(abi.Events))
	r.feed.Send(RegistryEvent{Name: name, Kind: ContractRegistered})
	return nil
}

// Unregister removes the interface registered under name. It reports whether
// one was found.
// Unregister 移除以 name 注册的接口，并报告是否找到。
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	old := r.table.Load()
	if _, ok := old.entries[name]; !ok {
		r.mu.Unlock()
		return false
	}
	entries := make([]*Entry, 0, len(old.entries))
	for _, e := range old.entries {
		if e.Name != name {
			entries = append(entries, e)
		}
	}
	r.table.Store(buildTable(entries))
	r.mu.Unlock()

	log.Info("Unregistered contract interface", "name", name)
	r.feed.Send(RegistryEvent{Name: name, Kind: ContractUnregistered})
	return true
}

// Subscribe creates an async subscription to receive notifications when
// interfaces are registered or removed.
// Subscribe 创建异步订阅，以便在接口注册或移除时接收通知。
func (r *Registry) Subscribe(sink chan<- RegistryEvent) event.Subscription {
	return r.feed.Subscribe(sink)
}

// Contract returns the interface registered under name.
func (r *Registry) Contract(name string) (*Entry, bool) {
	e, ok := r.table.Load().entries[name]
	return e, ok
}

// Contracts returns all registered interfaces in registration order.
// Contracts 按注册顺序返回所有已注册的接口。
func (r *Registry) Contracts() []*Entry {
	return sortedEntries(r.table.Load().entries)
}

// MethodByID looks a method up by the leading 4 bytes of call data across all
// registered interfaces.
// MethodByID 在所有已注册的接口中，通过调用数据开头的 4 个字节查找方法。
func (r *Registry) MethodByID(sigdata []byte) (*Method, error) {
	if len(sigdata) < 4 {
		return nil, layoutErr("data too short (%d bytes) for abi method lookup", len(sigdata))
	}
	var id [4]byte
	copy(id[:], sigdata[:4])
	if method, ok := r.table.Load().methods[id]; ok {
		return method, nil
	}
	return nil, fmt.Errorf("%w: no method with id %#x", ErrUnknownSelector, sigdata[:4])
}

// EventByID looks an event up by its topic hash across all registered interfaces.
func (r *Registry) EventByID(topic common.Hash) (*Event, error) {
	if ev, ok := r.table.Load().events[topic]; ok {
		return ev, nil
	}
	return nil, fmt.Errorf("%w: no event with id %s", ErrUnknownSelector, topic.Hex())
}

// DecodeMethod decodes call data with whichever registered method its
// selector names.
// DecodeMethod 使用选择器所对应的已注册方法解码调用数据。
func (r *Registry) DecodeMethod(data []byte) (*MethodCall, error) {
	method, err := r.MethodByID(data)
	if err != nil {
		return nil, err
	}
	params, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("method '%s': %w", method.Name, err)
	}
	return &MethodCall{Method: method, Name: method.Name, Params: params}, nil
}

// DecodeLog decodes a log. An interface registered at the emitting address is
// preferred, otherwise the event is looked up by topic across all interfaces.
// DecodeLog 解码日志。优先使用在发出地址上注册的接口，否则在所有接口中按主题查找事件。
func (r *Registry) DecodeLog(l *types.Log) (*EventRecord, error) {
	if l == nil || len(l.Topics) == 0 {
		return nil, fmt.Errorf("%w: log without topics", ErrUnknownSelector)
	}
	table := r.table.Load()
	if e, ok := table.addresses[l.Address]; ok {
		record, err := e.ABI.DecodeLog(l)
		if err == nil {
			return record, nil
		}
		// Only an event unknown to the bound interface falls through to the
		// shared topic table.
		// 只有绑定接口不认识的事件才会回退到共享的主题表。
		if !errors.Is(err, ErrUnknownSelector) {
			return nil, fmt.Errorf("contract %s: %w", e.Name, err)
		}
	}
	ev, ok := table.events[l.Topics[0]]
	if !ok {
		return nil, fmt.Errorf("%w: no event with id %s", ErrUnknownSelector, l.Topics[0].Hex())
	}
	return ev.DecodeLogItem(l)
}

// buildTable assembles a snapshot from entries, earlier registrations first.
func buildTable(entries []*Entry) *registryTable {
	table := &registryTable{
		entries:   make(map[string]*Entry, len(entries)),
		addresses: make(map[common.Address]*Entry),
		methods:   make(map[[4]byte]*Method),
		events:    make(map[common.Hash]*Event),
	}
	for _, e := range entries {
		table.entries[e.Name] = e
	}
	for _, e := range sortedEntries(table.entries) {
		if e.Address != (common.Address{}) {
			if _, ok := table.addresses[e.Address]; !ok {
				table.addresses[e.Address] = e
			}
		}
		for id, method := range e.ABI.methodsByID {
			if prev, ok := table.methods[id]; ok {
				log.Warn("Conflicting method selector", "selector", method.Selector(), "kept", prev.Sig, "dropped", method.Sig, "contract", e.Name)
				continue
			}
			table.methods[id] = method
		}
		for id, ev := range e.ABI.eventsByID {
			if prev, ok := table.events[id]; ok {
				log.Debug("Shared event topic", "topic", id, "kept", prev.Name, "contract", e.Name)
				continue
			}
			table.events[id] = ev
		}
	}
	return table
}

func sortedEntries(m map[string]*Entry) []*Entry {
	list := make([]*Entry, 0, len(m))
	for _, e := range m {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].seq < list[j].seq })
	return list
}
