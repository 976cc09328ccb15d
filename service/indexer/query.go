package indexer

const domainFields = `
    id
    labelName
    labelhash
    name
    createdAt
    parent {
      id
    }
    resolver {
      address
      texts
    }`

const getDomainByIdQuery = `
query getDomains($tokenId: String) {
  domain(id: $tokenId) {` + domainFields + `
    wrappedDomain {
      fuses
      expiryDate
    }
  }
}`

const getDomainByLabelhashQuery = `
query getDomains($tokenId: String, $parent: String) {
  domains(first: 1, where: { labelhash: $tokenId, parent: $parent }) {` + domainFields + `
  }
}`

const getRegistrationsQuery = `
query getRegistration($labelhash: String) {
  registrations(orderBy: registrationDate, orderDirection: desc, where: { id: $labelhash }) {
    labelName
    registrationDate
    expiryDate
  }
}`

const pingQuery = `
{
  _meta {
    block {
      number
    }
  }
}`
