package store

// mappingStoreSchema mirrors schemas/mapping_store.schema.json. It is kept
// inline so Load can sanity-check a store file without a schema path lookup.
const mappingStoreSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "MappingStore",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "additionalProperties": {"type": "string"}
  }
}`
