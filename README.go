/*

Package fabrica -> factories for test entities that look persisted but never touch the database



Introduction

Most test suites that work against a storage layer spend the majority of their lines
on constructing entities instead of expressing the expectation they were written for.
fabrica aims to remove that construction noise.
You define once what a valid entity of a given type looks like,
and from that point every test can ask the factory for as many records as it needs,
override only the attributes the test actually cares about,
and stay silent about everything else.



Build strategies

The factory knows three strategies to hand out a record.

Build returns a plain in-memory entity. Its identifier and timestamps are left empty,
which is the shape an entity has right before it would be given to a storage.

BuildStubbed returns an entity that looks like it was already persisted.
It carries a unique identifier and filled CreatedAt/UpdatedAt timestamps,
yet nothing was written anywhere. Most behavior tests don't actually need the database,
they only need an object that could have come from it,
and a stubbed record is orders of magnitude cheaper than a created one.

Create builds the entity and hands it to a fabrica.Creator,
so it goes through the same persistence path as production code would use.

The package level contract is that a stubbed record must never reach the database.
The stubs package provides a fabrica.Storage implementation that refuses every
operation with fabrica.ErrStubbed, so a test that accidentally mixes the strategies
fails loudly instead of silently writing to a store.



Identity

An entity declares its external identifier with the ext:"ID" struct tag,
or as a fallback with a field named ID. The extid package contains the lookup rules.
Stubbed identifiers come from a process wide sequence for integer fields
and from UUIDs for string fields, so two stubbed records never share an identity.



Storages

The storages directory contains two reference implementations of the fabrica.Storage
interface set. memorystorage keeps everything in maps for fast feedback loops,
localstorage persists into a BoltDB file. Both pass the contracts.StorageSpec suite,
and any storage you write against these interfaces can be verified with the same suite.

*/
package fabrica
